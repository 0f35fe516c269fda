// Package voice bridges a continuous bidirectional audio stream to the
// same tool-call contract the text chat uses.
package voice

import "encoding/json"

// Audio sample rates fixed by the live endpoint: PCM capture upstream,
// PCM playback downstream.
const (
	CaptureSampleRate  = 16000
	PlaybackSampleRate = 24000
)

// clientMessage is the envelope for everything we send on the live
// socket. Exactly one field is set per message.
type clientMessage struct {
	Setup         *setupPayload  `json:"setup,omitempty"`
	RealtimeInput *realtimeInput `json:"realtimeInput,omitempty"`
	ToolResponse  *toolResponse  `json:"toolResponse,omitempty"`
}

type setupPayload struct {
	Model             string          `json:"model"`
	GenerationConfig  *generationConf `json:"generationConfig,omitempty"`
	SystemInstruction *content        `json:"systemInstruction,omitempty"`
	Tools             []toolDecl      `json:"tools,omitempty"`
}

type generationConf struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type toolDecl struct {
	FunctionDeclarations []functionDecl `json:"functionDeclarations"`
}

type functionDecl struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters,omitempty"`
}

type realtimeInput struct {
	MediaChunks []inlineData `json:"mediaChunks"`
}

type toolResponse struct {
	FunctionResponses []functionResponse `json:"functionResponses"`
}

type functionResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// serverMessage is the envelope for everything the live endpoint sends.
type serverMessage struct {
	SetupComplete *struct{}        `json:"setupComplete,omitempty"`
	ServerContent *serverContent   `json:"serverContent,omitempty"`
	ToolCall      *toolCallPayload `json:"toolCall,omitempty"`
}

type serverContent struct {
	ModelTurn    *content `json:"modelTurn,omitempty"`
	Interrupted  bool     `json:"interrupted,omitempty"`
	TurnComplete bool     `json:"turnComplete,omitempty"`
}

type toolCallPayload struct {
	FunctionCalls []functionCall `json:"functionCalls"`
}

type functionCall struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}
