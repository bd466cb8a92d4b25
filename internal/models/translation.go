package models

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText   string  `json:"translatedText"`
		Match            float64 `json:"match"`
		ResponseStatus   int     `json:"responseStatus"`
		ResponseDetails  string  `json:"responseDetails"`
		ExceptionMessage string  `json:"exceptionMessage"`
		MTLangSupported  bool    `json:"mtLangSupported"`
		TranslatedTTL    int     `json:"translatedTTL"`
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

type TranslationResult struct {
	Text         string
	Match        float64
	Source       string
	Target       string
	Reliable     bool
	Alternatives []string
	Error        string
}
