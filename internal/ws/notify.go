package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type MemberJoinedEvent struct {
	Type      string `json:"type"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMemberJoined broadcasts a signup to connected dashboards. Safe to
// call before any hub is installed; it simply does nothing.
func NotifyMemberJoined(username, role string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return
	}

	evt := MemberJoinedEvent{
		Type:      "member_joined",
		Username:  username,
		Role:      role,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
