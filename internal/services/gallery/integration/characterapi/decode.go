package characterapi

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/louisbranch/character-gallery/internal/character"
)

// decodeList accepts either a bare JSON array or the paginated envelope.
func decodeList(body []byte) (ListOutput, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ListOutput{}, errors.New("empty body")
	}
	switch trimmed[0] {
	case '[':
		var chars []character.Character
		if err := json.Unmarshal(trimmed, &chars); err != nil {
			return ListOutput{}, err
		}
		return ListOutput{Characters: chars}, nil
	case '{':
		return decodeEnvelope(trimmed)
	case 'n':
		if string(trimmed) == "null" {
			return ListOutput{}, nil
		}
	}
	return ListOutput{}, errors.New("body is neither an array nor an object")
}

// decodeEnvelope reads {"data": [...], "pagination": {...}}. A null data
// field is an empty page; a missing one is an error.
func decodeEnvelope(body []byte) (ListOutput, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ListOutput{}, err
	}
	rawData, ok := fields["data"]
	if !ok {
		return ListOutput{}, errors.New("envelope has no data field")
	}
	var out ListOutput
	if err := json.Unmarshal(rawData, &out.Characters); err != nil {
		return ListOutput{}, err
	}
	if rawPagination, ok := fields["pagination"]; ok {
		if err := json.Unmarshal(rawPagination, &out.Pagination); err != nil {
			return ListOutput{}, err
		}
	}
	return out, nil
}

// decodeCharacter decodes a single record. A literal null decodes to
// found=false.
func decodeCharacter(body []byte) (character.Character, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if string(trimmed) == "null" {
		return character.Character{}, false, nil
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return character.Character{}, false, errors.New("body is not an object")
	}
	var record character.Character
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return character.Character{}, false, err
	}
	return record, true, nil
}

func decodeErrorBody(body []byte) apiErrorBody {
	var out apiErrorBody
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return apiErrorBody{Error: truncate(string(trimmed), maxErrorMessageLen)}
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return apiErrorBody{}
	}
	return out
}

const maxErrorMessageLen = 200

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
