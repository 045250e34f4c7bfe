package http

import (
	"carcare-backend/internal/chat"
	"carcare-backend/pkg/response"
)

// The chat endpoints keep the bare {reply} body the widget frontend
// expects, rather than the shared response envelope.

// --- Request DTOs ---

type askReq struct {
	Message string `json:"message"`
}

func (r askReq) toInput() chat.AskInput {
	return chat.AskInput{Message: r.Message}
}

// --- Response DTOs ---

type askResp struct {
	Reply string `json:"reply"`
}

type historyEntryResp struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
	Time string `json:"time"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) []historyEntryResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, entry := range out.Entries {
		entries[i] = historyEntryResp{
			User: entry.UserMessage,
			Bot:  entry.BotResponse,
			Time: entry.Timestamp.Local().Format(response.DateTimeFormat),
		}
	}
	return entries
}
