// Package transport exposes the process status over gRPC health checks and a REST gateway.
package transport

import (
	"encoding/json"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"go.uber.org/zap"
)

// Status is the JSON document served on /v1/status.
type Status struct {
	Network    model.Network  `json:"network"`
	InstanceID string         `json:"instanceId"`
	Leader     string         `json:"leader"`
	IsLeader   bool           `json:"isLeader"`
	Provider   *ProviderState `json:"provider,omitempty"`
	Head       HeadState      `json:"head"`
	CatchUp    CatchUpState   `json:"catchUp"`
}

type ProviderState struct {
	Key    string `json:"key"`
	HTTP   string `json:"http"`
	WS     string `json:"ws"`
	Height int64  `json:"height"`
}

type HeadState struct {
	State  string `json:"state"`
	Height int64  `json:"height"`
	Hash   string `json:"hash,omitempty"`
}

type CatchUpState struct {
	PendingBuckets int   `json:"pendingBuckets"`
	PendingHeights int64 `json:"pendingHeights"`
	Done           bool  `json:"done"`
}

// StatusHandler assembles Status from the running components.
type StatusHandler struct {
	network  model.Network
	election ElectionView
	provider ProviderView
	head     HeadView
	catchUp  CatchUpView
	logger   *zap.Logger
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(
	network model.Network,
	election ElectionView,
	provider ProviderView,
	head HeadView,
	catchUp CatchUpView,
	logger *zap.Logger,
) *StatusHandler {
	return &StatusHandler{
		network:  network,
		election: election,
		provider: provider,
		head:     head,
		catchUp:  catchUp,
		logger:   logger,
	}
}

// Status returns a snapshot of the process state.
func (h *StatusHandler) Status() Status {
	st := Status{
		Network:    h.network,
		InstanceID: h.election.ID(),
		Leader:     h.election.Leader(),
		IsLeader:   h.election.IsLeader(),
		Provider:   h.providerState(),
	}

	cursor := h.head.Cursor()
	st.Head = HeadState{State: h.head.State().String(), Height: cursor.Height, Hash: cursor.Hash}

	pending := h.catchUp.Pending()
	st.CatchUp.PendingBuckets = len(pending)
	for _, b := range pending {
		st.CatchUp.PendingHeights += b.Len()
	}
	st.CatchUp.Done = h.catchUp.Finished() && len(pending) == 0
	return st
}

func (h *StatusHandler) providerState() *ProviderState {
	p, ok := h.provider.Current()
	if !ok {
		return nil
	}
	return &ProviderState{Key: p.Key(), HTTP: p.HTTP, WS: p.WS, Height: p.Height}
}

// ServeStatus writes Status as JSON.
func (h *StatusHandler) ServeStatus(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeJSON(w, http.StatusOK, h.Status())
}

// ServeProvider writes the selected provider, or 404 before the first selection.
func (h *StatusHandler) ServeProvider(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	p := h.providerState()
	if p == nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no provider selected"})
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *StatusHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write status response", zap.Error(err))
	}
}
