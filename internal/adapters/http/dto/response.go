// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the story server.
package dto

import (
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/narrative"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain/symbol"
)

// ActListResponse lists every act of the loaded story.
type ActListResponse struct {
	Acts  []string `json:"acts"`
	Count int      `json:"count"`
}

// ToActListResponse converts act names to a list response. A nil slice is
// rendered as an empty JSON array.
func ToActListResponse(acts []string) ActListResponse {
	if acts == nil {
		acts = []string{}
	}
	return ActListResponse{Acts: acts, Count: len(acts)}
}

// ActResponse holds the items of one act.
type ActResponse struct {
	Act   string         `json:"act"`
	Items []ItemResponse `json:"items"`
}

// ItemResponse is one dialogue line or choice set.
type ItemResponse struct {
	Kind        string              `json:"kind"`
	Character   string              `json:"character"`
	DisplayName string              `json:"display_name,omitempty"`
	Text        string              `json:"text,omitempty"`
	Choices     []ChoiceResponse    `json:"choices,omitempty"`
	Attributes  []AttributeResponse `json:"attributes,omitempty"`
}

// ChoiceResponse is one option of a choice set.
type ChoiceResponse struct {
	Text string `json:"text"`
	Jump string `json:"jump"`
}

// AttributeResponse is one character attribute, in declaration order.
type AttributeResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ToActResponse converts the decoded items of act to an HTTP response DTO.
func ToActResponse(act string, items []narrative.Item) ActResponse {
	resp := ActResponse{Act: act, Items: make([]ItemResponse, len(items))}
	for i := range items {
		resp.Items[i] = ToItemResponse(&items[i])
	}
	return resp
}

// ToItemResponse converts a domain Item to an HTTP response DTO.
func ToItemResponse(it *narrative.Item) ItemResponse {
	resp := ItemResponse{
		Kind:        it.Kind.String(),
		Character:   it.Character,
		DisplayName: it.DisplayName,
		Text:        it.Text,
		Attributes:  toAttributeResponses(it.Attributes),
	}
	if len(it.Choices) > 0 {
		resp.Choices = make([]ChoiceResponse, len(it.Choices))
		for i, c := range it.Choices {
			resp.Choices[i] = ChoiceResponse{Text: c.Text, Jump: c.Jump}
		}
	}
	return resp
}

func toAttributeResponses(attrs []symbol.Attribute) []AttributeResponse {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]AttributeResponse, len(attrs))
	for i, a := range attrs {
		out[i] = AttributeResponse{Key: a.Key, Value: a.Value}
	}
	return out
}
