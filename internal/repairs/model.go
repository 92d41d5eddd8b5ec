package repairs

// Service is a repair service advertised on the landing page. The list is
// compiled in and not editable from the admin console.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
}

func All() []Service {
	return []Service{
		{
			ID:          "s1",
			Title:       "Troca de Vidro",
			Description: "Reparo especializado utilizando cola OCA e vácuo, preservando sua tela original.",
			IconName:    "Smartphone",
		},
		{
			ID:          "s2",
			Title:       "Bateria Original",
			Description: "Substituição com peças homologadas e aviso de saúde original para iPhones.",
			IconName:    "BatteryCharging",
		},
		{
			ID:          "s3",
			Title:       "Reparo em Placa",
			Description: "Soluções para aparelhos que não ligam, molharam ou possuem curto-circuito.",
			IconName:    "Cpu",
		},
		{
			ID:          "s4",
			Title:       "Acessórios Premium",
			Description: "Linha completa de carregadores e cabos com certificação MFi e Anatel.",
			IconName:    "Headphones",
		},
	}
}
