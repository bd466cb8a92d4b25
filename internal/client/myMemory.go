package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/models"
)

type MyMemoryAPI struct{}

func NewMyMemoryAPI() *MyMemoryAPI {
	return &MyMemoryAPI{}
}

// Translate looks text up for an arbitrary language pair through the
// MyMemory public API.
func (m *MyMemoryAPI) Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error) {
	reqURL := fmt.Sprintf(
		"https://api.mymemory.translated.net/get?q=%s&langpair=%s|%s",
		url.QueryEscape(text), url.QueryEscape(source), url.QueryEscape(target),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return models.TranslationResult{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return models.TranslationResult{}, err
	}
	defer resp.Body.Close()

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TranslationResult{}, err
	}

	if data.ResponseBody.ResponseStatus != 200 {
		return models.TranslationResult{
			Error: data.ResponseBody.ResponseDetails,
		}, nil
	}

	var alternatives []string
	for _, m := range data.Matches {
		if m.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, m.Translation)
		}
	}

	return models.TranslationResult{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Source:       source,
		Target:       target,
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}
