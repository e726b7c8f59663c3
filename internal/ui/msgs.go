package ui

import (
	"github.com/evhart/stride/internal/coach"
	"github.com/evhart/stride/internal/fetch"
)

// tabActivatedMsg triggers the load policy for the active tab. Emitted on
// startup, tab switches, profile switches, and date cursor changes.
type tabActivatedMsg struct{}

// Loader results. Each carries the generation of the load that produced it;
// Update commits through the controller, which drops stale generations.

type homeLoadedMsg struct {
	gen uint64
	vm  homeVM
	err error
}

type recsLoadedMsg struct {
	gen  uint64
	recs []coach.Recommendation
	err  error
}

type dashboardLoadedMsg struct {
	gen uint64
	vm  dashboardVM
	err error
}

type progressLoadedMsg struct {
	gen uint64
	vm  progressVM
	err error
}

type detailLoadedMsg struct {
	gen uint64
	vm  detailVM
	err error
}

type adviceLoadedMsg struct {
	gen    uint64
	detail coach.Detail
	err    error
}

type hourlyLoadedMsg struct {
	gen uint64
	vm  hourlyVM
	err error
}

type questionsLoadedMsg struct {
	gen       uint64
	questions []coach.SuggestedQuestion
	err       error
}

type subjectsLoadedMsg struct {
	gen  uint64
	page fetch.Page[coach.ConversationSubject]
	err  error
}

// moreSubjectsMsg carries a load-more page. Failure keeps loaded items. The
// epoch pins the result to the collection it was fetched for; a profile
// switch or fresh first page in the meantime orphans it.
type moreSubjectsMsg struct {
	epoch uint64
	page  fetch.Page[coach.ConversationSubject]
	err   error
}

type conversationLoadedMsg struct {
	gen uint64
	vm  conversationVM
	err error
}

// chatReplyMsg carries the coach's reply to a sent message.
type chatReplyMsg struct {
	localID string
	resp    coach.ChatResponse
	err     error
}

// mutationDoneMsg reports the outcome of a goal update or weight log.
type mutationDoneMsg struct {
	verb string
	err  error
}

// toastClearMsg hides the transient status line.
type toastClearMsg struct{}
