package main

import "time"

type uiState struct {
	mode         mode
	command      CommandInput
	noticeMsg    string
	noticeType   string
	noticeSeq    int
	searchQuery  string
	visibleStart int
	listHeight   int

	framePending bool
	lastFrame    time.Time
	refilter     bool // archived rows changed while hidden

	drag dragState
}

// dragState tracks the row a left-button press captured.
type dragState struct {
	view      *rowView
	startX    int
	moved     bool
	onAction  bool // press landed on the revealed secondary surface
	wasOpened bool
}
