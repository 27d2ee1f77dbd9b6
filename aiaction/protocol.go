package aiaction

import (
	"encoding/json"
	"strings"
)

// ActionsMarker linha final da resposta do modelo com as ações planejadas
const ActionsMarker = "ACTIONS:"

// PlannedAction ação sugerida pelo modelo, ainda não executada
type PlannedAction struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

// ExtractActions lê o array JSON após o marcador. Sem marcador ou JSON inválido: nil.
func ExtractActions(text string) []PlannedAction {
	idx := strings.Index(text, ActionsMarker)
	if idx == -1 {
		return nil
	}
	raw := strings.TrimSpace(text[idx+len(ActionsMarker):])
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") {
		return nil
	}

	var out []PlannedAction
	if err := json.NewDecoder(strings.NewReader(raw)).Decode(&out); err != nil {
		return nil
	}
	valid := out[:0]
	for _, a := range out {
		if a.Name == "" {
			continue
		}
		if a.Params == nil {
			a.Params = map[string]any{}
		}
		valid = append(valid, a)
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}

// StripActions remove o marcador e tudo o que vem depois
func StripActions(text string) string {
	idx := strings.Index(text, ActionsMarker)
	if idx == -1 {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[:idx])
}
