package entity

import (
	"bytes"
	"encoding/json"
)

// SongInput is one song supplied by the caller. Fields keep the raw JSON value
// sent (string or number) and are omitted when absent.
type SongInput struct {
	Title    json.RawMessage `json:"title,omitempty"`
	Album    json.RawMessage `json:"album,omitempty"`
	Artist   json.RawMessage `json:"artist,omitempty"`
	Language json.RawMessage `json:"language,omitempty"`
	Year     json.RawMessage `json:"year,omitempty"`
}

// SuggestionRequest is the body of POST /filter-songs.
type SuggestionRequest struct {
	Songs []SongInput `json:"songs"`
}

// UnmarshalJSON never fails on the songs field: a missing, null or non-array
// value yields an empty list, and a non-object element yields an empty SongInput.
func (r *SuggestionRequest) UnmarshalJSON(data []byte) error {
	r.Songs = []SongInput{}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		// "null" or a non-object body carries no songs
		if json.Valid(data) {
			return nil
		}
		return err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(envelope["songs"], &items); err != nil {
		return nil
	}

	for _, item := range items {
		var song SongInput
		if bytes.HasPrefix(bytes.TrimSpace(item), []byte("{")) {
			_ = json.Unmarshal(item, &song)
		}
		r.Songs = append(r.Songs, song)
	}
	return nil
}

// SuggestedSong is the shape the model is asked to produce. It is documented
// here but not enforced on the model output.
type SuggestedSong struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Reason string `json:"reason"`
}

// SuggestionList is the top-level object the model is asked to produce.
type SuggestionList struct {
	Suggestions []SuggestedSong `json:"suggestions"`
}

// SuggestionResponse pairs the projected input songs with the parsed model output.
type SuggestionResponse struct {
	FilteredSongs  []SongInput     `json:"filteredSongs"`
	SuggestedSongs json.RawMessage `json:"suggestedSongs"`
}

// AIResponse is what a model provider returns for one generation.
type AIResponse struct {
	Content    string `json:"content"`
	Model      string `json:"model"`
	TokenCount int    `json:"token_count"`
	Latency    int64  `json:"latency_ms"`
}
