package voice

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"travel-assistant/agent"
	"travel-assistant/tools"
)

// DefaultEndpoint is the model vendor's live bidirectional audio
// endpoint.
const DefaultEndpoint = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

// State is the voice session lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateSpeaking
	StateListening
	StateError
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateSpeaking:
		return "speaking"
	case StateListening:
		return "listening"
	case StateError:
		return "error"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ErrNotConnected is returned when audio is pushed before Connect or
// after the session closed.
var ErrNotConnected = errors.New("voice session is not connected")

// Conn is the narrow slice of the websocket connection the session needs;
// tests substitute a scripted fake.
type Conn interface {
	WriteJSON(v any) error
	ReadJSON(v any) error
	Close() error
}

// DialFunc opens the live socket.
type DialFunc func(ctx context.Context, url string) (Conn, error)

func gorillaDial(ctx context.Context, url string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Dispatch executes one tool call from the voice channel. The contract is
// the same as the chat mediator's; only the response delivery differs.
type Dispatch func(ctx context.Context, call agent.ToolCall) agent.ToolResponse

// Config wires a voice session to its collaborators.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string

	Dispatch      Dispatch
	OnFragment    func(Fragment)
	OnInterrupted func()
	OnStateChange func(State)

	// Capture is the microphone stream handle, released on every exit
	// path. May be nil when the caller owns capture separately.
	Capture io.Closer

	Dial DialFunc
}

// Session is one live audio conversation. Capture frames stream up
// continuously; response fragments are scheduled for gapless playback;
// an interrupted signal cancels playback immediately (barge-in). All
// resources are released on every exit path, normal or not.
type Session struct {
	cfg   Config
	sched *Scheduler

	mu      sync.Mutex
	state   State
	conn    Conn
	done    chan struct{}
	release sync.Once
}

// NewSession creates an idle session.
func NewSession(cfg Config) *Session {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Dial == nil {
		cfg.Dial = gorillaDial
	}
	return &Session{
		cfg:   cfg,
		sched: NewScheduler(),
		state: StateIdle,
		done:  make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Scheduler exposes the playback scheduler, mainly for teardown checks.
func (s *Session) Scheduler() *Scheduler {
	return s.sched
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	if s.cfg.OnStateChange != nil {
		s.cfg.OnStateChange(st)
	}
}

// Connect dials the live endpoint, performs setup, and starts the read
// loop. Valid only from idle.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		st := s.state
		s.mu.Unlock()
		return fmt.Errorf("cannot connect from state %s", st)
	}
	s.state = StateConnecting
	s.mu.Unlock()

	url := s.cfg.Endpoint + "?key=" + s.cfg.APIKey
	conn, err := s.cfg.Dial(ctx, url)
	if err != nil {
		s.fail(fmt.Errorf("failed to open live session: %w", err))
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	setup := clientMessage{Setup: &setupPayload{
		Model:             "models/" + s.cfg.Model,
		GenerationConfig:  &generationConf{ResponseModalities: []string{"AUDIO"}},
		SystemInstruction: &content{Parts: []part{{Text: agent.SystemInstruction}}},
		Tools:             declaredTools(),
	}}
	if err := s.writeJSON(setup); err != nil {
		s.fail(fmt.Errorf("failed to send setup: %w", err))
		return err
	}

	var first serverMessage
	if err := conn.ReadJSON(&first); err != nil || first.SetupComplete == nil {
		if err == nil {
			err = errors.New("live session did not acknowledge setup")
		}
		s.fail(err)
		return err
	}

	s.setState(StateConnected)
	s.setState(StateListening)
	go s.readLoop(ctx)
	return nil
}

// SendAudio pushes one captured PCM frame upstream. Frames are sent in
// capture order; there is no request/response framing.
func (s *Session) SendAudio(pcm []byte) error {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()
	switch st {
	case StateConnected, StateSpeaking, StateListening:
	default:
		return ErrNotConnected
	}

	return s.writeJSON(clientMessage{RealtimeInput: &realtimeInput{
		MediaChunks: []inlineData{{
			MimeType: fmt.Sprintf("audio/pcm;rate=%d", CaptureSampleRate),
			Data:     base64.StdEncoding.EncodeToString(pcm),
		}},
	}})
}

// Stop tears the session down: remote socket, microphone capture, and
// scheduled playback all released. Safe to call from any state and
// repeatedly.
func (s *Session) Stop() {
	s.releaseAll()
	s.setState(StateClosed)
}

func (s *Session) fail(err error) {
	log.Printf("Voice session error: %v", err)
	s.setState(StateError)
	s.releaseAll()
	s.setState(StateClosed)
}

// releaseAll is the mandatory cleanup contract: it runs exactly once no
// matter which exit path triggers it.
func (s *Session) releaseAll() {
	s.release.Do(func() {
		close(s.done)
		s.mu.Lock()
		conn := s.conn
		s.conn = nil
		s.mu.Unlock()
		if conn != nil {
			if err := conn.Close(); err != nil {
				log.Printf("Failed to close live session: %v", err)
			}
		}
		if s.cfg.Capture != nil {
			if err := s.cfg.Capture.Close(); err != nil {
				log.Printf("Failed to release capture stream: %v", err)
			}
		}
		s.sched.Interrupt()
	})
}

func (s *Session) stopping() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) writeJSON(msg clientMessage) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	return conn.WriteJSON(msg)
}

func (s *Session) readLoop(ctx context.Context) {
	for {
		s.mu.Lock()
		conn := s.conn
		s.mu.Unlock()
		if conn == nil {
			return
		}

		var msg serverMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if s.stopping() {
				return
			}
			s.fail(fmt.Errorf("live session read failed: %w", err))
			return
		}

		switch {
		case msg.ToolCall != nil:
			s.handleToolCall(ctx, msg.ToolCall)
		case msg.ServerContent != nil:
			s.handleServerContent(msg.ServerContent)
		}
	}
}

func (s *Session) handleServerContent(sc *serverContent) {
	if sc.Interrupted {
		stopped := s.sched.Interrupt()
		log.Printf("Playback interrupted, stopped %d fragments", stopped)
		s.setState(StateListening)
		if s.cfg.OnInterrupted != nil {
			s.cfg.OnInterrupted()
		}
		return
	}

	if sc.ModelTurn != nil {
		for _, p := range sc.ModelTurn.Parts {
			if p.InlineData == nil {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				log.Printf("Failed to decode audio fragment: %v", err)
				continue
			}
			frag := s.sched.Schedule(data, PCMDuration(len(data), PlaybackSampleRate))
			s.setState(StateSpeaking)
			if s.cfg.OnFragment != nil {
				s.cfg.OnFragment(frag)
			}
		}
	}

	if sc.TurnComplete {
		s.setState(StateListening)
	}
}

// handleToolCall runs the standard dispatch contract for tool calls that
// arrive over the voice channel; responses go back on the live socket's
// tool response channel instead of a sendMessage round-trip.
func (s *Session) handleToolCall(ctx context.Context, tc *toolCallPayload) {
	responses := make([]functionResponse, 0, len(tc.FunctionCalls))
	for _, fc := range tc.FunctionCalls {
		call := agent.ToolCall{ID: fc.ID, Name: fc.Name}
		if len(fc.Args) > 0 {
			if err := json.Unmarshal(fc.Args, &call.Args); err != nil {
				log.Printf("Malformed arguments for voice tool %s: %v", fc.Name, err)
			}
		}
		resp := s.cfg.Dispatch(ctx, call)
		responses = append(responses, functionResponse{
			ID:       resp.ID,
			Name:     resp.Name,
			Response: map[string]any{"result": resp.Content},
		})
	}

	if err := s.writeJSON(clientMessage{ToolResponse: &toolResponse{FunctionResponses: responses}}); err != nil {
		log.Printf("Failed to send tool responses: %v", err)
	}
}

// declaredTools converts the shared tool registry into the live
// endpoint's declaration wire shape.
func declaredTools() []toolDecl {
	decls := make([]functionDecl, 0, 2)
	for _, t := range tools.Declarations() {
		if t.Function == nil {
			continue
		}
		decls = append(decls, functionDecl{
			Name:        t.Function.Name,
			Description: t.Function.Description,
			Parameters:  t.Function.Parameters,
		})
	}
	return []toolDecl{{FunctionDeclarations: decls}}
}
