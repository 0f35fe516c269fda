package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"travel-assistant/voice"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The UI is served from other origins during local development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// VoiceHandler bridges a browser websocket to the model's live audio
// endpoint: upstream binary frames are 16kHz PCM capture, downstream
// binary frames are 24kHz PCM playback, and control events travel as
// small JSON text messages.
type VoiceHandler struct {
	apiKey string
	model  string
	chat   *ChatHandler
}

// NewVoiceHandler creates a new voice handler bound to the chat handler's
// conversation set.
func NewVoiceHandler(apiKey, model string, chat *ChatHandler) *VoiceHandler {
	return &VoiceHandler{apiKey: apiKey, model: model, chat: chat}
}

type voiceEvent struct {
	Event string `json:"event"`
	State string `json:"state,omitempty"`
}

// Stream runs one voice session for an existing conversation. The session
// ends when the browser disconnects or the live endpoint fails; every
// exit path releases the remote session, playback and socket.
func (h *VoiceHandler) Stream(c *gin.Context) {
	conv, ok := h.chat.lookup(c)
	if !ok {
		return
	}

	browser, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Voice upgrade failed: %v", err)
		return
	}
	defer browser.Close()

	// gorilla permits one concurrent writer only.
	var writeMu sync.Mutex
	writeEvent := func(ev voiceEvent) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := browser.WriteJSON(ev); err != nil {
			log.Printf("Failed to write voice event: %v", err)
		}
	}

	session := voice.NewSession(voice.Config{
		APIKey:   h.apiKey,
		Model:    h.model,
		Dispatch: conv.DispatchTool,
		OnFragment: func(f voice.Fragment) {
			writeMu.Lock()
			defer writeMu.Unlock()
			if err := browser.WriteMessage(websocket.BinaryMessage, f.Data); err != nil {
				log.Printf("Failed to forward audio fragment: %v", err)
			}
		},
		OnInterrupted: func() {
			writeEvent(voiceEvent{Event: "interrupted"})
		},
		OnStateChange: func(st voice.State) {
			writeEvent(voiceEvent{Event: "state", State: st.String()})
		},
	})
	defer session.Stop()

	if err := session.Connect(c.Request.Context()); err != nil {
		writeEvent(voiceEvent{Event: "error"})
		return
	}

	for {
		msgType, data, err := browser.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		if err := session.SendAudio(data); err != nil {
			log.Printf("Failed to push capture frame: %v", err)
			return
		}
	}
}
