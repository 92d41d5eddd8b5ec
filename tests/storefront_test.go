package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wkdev/pacelular-backend/internal/catalog"
	"github.com/wkdev/pacelular-backend/internal/schedule"
)

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type productResponse struct {
	Product catalog.Product `json:"product"`
}

type productsResponse struct {
	Products []catalog.Product `json:"products"`
}

type hoursResponse struct {
	Hours schedule.BusinessHours `json:"hours"`
}

type statusResponse struct {
	IsOpen bool `json:"isOpen"`
}

const contentType = "application/json"

func (s *APITestSuite) login() string {
	body := bytes.NewBufferString(`{"username":"WK","password":"941819"}`)

	response, err := http.Post(fmt.Sprintf("%s/auth/login", s.baseUrl), contentType, body)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	decoded, err := decodeResponseBody[loginResponse](response)
	s.Require().NoError(err)
	s.Require().NotEmpty(decoded.AccessToken)

	return decoded.AccessToken
}

func (s *APITestSuite) doAuthorized(method, url string, body *bytes.Buffer, token string) *http.Response {
	if body == nil {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	s.Require().NoError(err)

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	response, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)

	return response
}

func (s *APITestSuite) TestLoginWithWrongPassword() {
	body := bytes.NewBufferString(`{"username":"wk","password":"000000"}`)

	response, err := http.Post(fmt.Sprintf("%s/auth/login", s.baseUrl), contentType, body)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, response.StatusCode)
}

func (s *APITestSuite) TestMutationWithoutToken() {
	response, err := http.Post(
		fmt.Sprintf("%s/products/", s.baseUrl),
		contentType,
		bytes.NewBufferString(`{}`),
	)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, response.StatusCode)
}

func (s *APITestSuite) TestProductLifecycle() {
	token := s.login()
	productsURL := fmt.Sprintf("%s/products/", s.baseUrl)

	// the seed catalog is served before any mutation
	response, err := http.Get(productsURL)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	listed, err := decodeResponseBody[productsResponse](response)
	s.Require().NoError(err)
	initialCount := len(listed.Products)

	// create
	createBody := bytes.NewBufferString(`{
		"name": "Redmi Note 13 128GB",
		"brand": "Xiaomi",
		"category": "Smartphones",
		"price": 1450,
		"image": "data:image/jpeg;base64,AAAA"
	}`)

	response = s.doAuthorized(http.MethodPost, productsURL, createBody, token)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	created, err := decodeResponseBody[productResponse](response)
	s.Require().NoError(err)
	s.Require().NotEmpty(created.Product.ID)

	// the new product is appended at the end of the list
	response, err = http.Get(productsURL)
	s.Require().NoError(err)

	listed, err = decodeResponseBody[productsResponse](response)
	s.Require().NoError(err)
	s.Require().Len(listed.Products, initialCount+1)
	s.Equal(created.Product.ID, listed.Products[initialCount].ID)

	// delete twice: the second call is a silent no-op
	deleteURL := productsURL + created.Product.ID

	response = s.doAuthorized(http.MethodDelete, deleteURL, nil, token)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	response = s.doAuthorized(http.MethodDelete, deleteURL, nil, token)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	remaining, err := decodeResponseBody[productsResponse](response)
	s.Require().NoError(err)
	s.Len(remaining.Products, initialCount)
}

func (s *APITestSuite) TestUpdateBusinessHours() {
	token := s.login()
	hoursURL := fmt.Sprintf("%s/hours/", s.baseUrl)

	response, err := http.Get(hoursURL)
	s.Require().NoError(err)

	current, err := decodeResponseBody[hoursResponse](response)
	s.Require().NoError(err)

	// open around the clock every day, then the status endpoint must say open
	updated := current.Hours
	always := schedule.BusinessDay{IsOpen: true, OpenTime: "00:00", CloseTime: "23:59"}
	updated.Monday = always
	updated.Tuesday = always
	updated.Wednesday = always
	updated.Thursday = always
	updated.Friday = always
	updated.Saturday = always
	updated.Sunday = always

	payload, err := json.Marshal(updated)
	s.Require().NoError(err)

	response = s.doAuthorized(http.MethodPut, hoursURL, bytes.NewBuffer(payload), token)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	response, err = http.Get(hoursURL + "status")
	s.Require().NoError(err)

	status, err := decodeResponseBody[statusResponse](response)
	s.Require().NoError(err)
	s.True(status.IsOpen)
}

func (s *APITestSuite) TestUpdateHoursRejectsPartialSchedule() {
	token := s.login()

	response := s.doAuthorized(
		http.MethodPut,
		fmt.Sprintf("%s/hours/", s.baseUrl),
		bytes.NewBufferString(`{"monday":{"isOpen":true,"openTime":"09:00","closeTime":"18:00"}}`),
		token,
	)
	s.Equal(http.StatusBadRequest, response.StatusCode)
}
