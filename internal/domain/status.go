package domain

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Status is the lifecycle state of a service request.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusAccepted   Status = "ACCEPTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	// StatusUnknown marks values the API sends that this client does not
	// recognize. It renders as its own state rather than masquerading as
	// PENDING.
	StatusUnknown Status = "UNKNOWN"
)

// Quote status values as the API sends them.
const (
	QuoteStatusPending  = "PENDING"
	QuoteStatusAccepted = "ACCEPTED"
	QuoteStatusRejected = "REJECTED"
	QuoteStatusExpired  = "EXPIRED"
)

// StatusAll is the filter value that disables status filtering.
const StatusAll = "all"

var unknownStatusSeen sync.Map

// ParseStatus normalizes a raw status string from the API.
// Unrecognized values map to StatusUnknown; each distinct unknown value is
// logged once so a new backend state shows up in logs without flooding them.
func ParseStatus(raw string) Status {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return s
	}
	if _, seen := unknownStatusSeen.LoadOrStore(raw, struct{}{}); !seen {
		log.Warn("unrecognized request status", "status", raw)
	}
	return StatusUnknown
}

// Tone names the visual treatment of a status badge. The styling layer maps
// tones to colors; the domain stays free of lipgloss.
type Tone int

const (
	ToneMuted Tone = iota
	ToneWarning
	ToneInfo
	ToneActive
	ToneSuccess
	ToneDanger
)

// Descriptor carries everything a view needs to render a status badge.
type Descriptor struct {
	Label string
	Tone  Tone
	Icon  string
}

var statusDescriptors = map[Status]Descriptor{
	StatusPending:    {Label: "Pendente", Tone: ToneWarning, Icon: "○"},
	StatusAccepted:   {Label: "Aceito", Tone: ToneInfo, Icon: "◐"},
	StatusInProgress: {Label: "Em Andamento", Tone: ToneActive, Icon: "◑"},
	StatusCompleted:  {Label: "Concluido", Tone: ToneSuccess, Icon: "●"},
	StatusCancelled:  {Label: "Cancelado", Tone: ToneDanger, Icon: "✕"},
	StatusUnknown:    {Label: "Desconhecido", Tone: ToneMuted, Icon: "?"},
}

// Describe returns the presentation descriptor for a status.
// The lookup is total: anything unmapped gets the unknown descriptor.
func Describe(s Status) Descriptor {
	if d, ok := statusDescriptors[s]; ok {
		return d
	}
	return statusDescriptors[StatusUnknown]
}

var quoteDescriptors = map[string]Descriptor{
	QuoteStatusPending:  {Label: "Pendente", Tone: ToneWarning, Icon: "○"},
	QuoteStatusAccepted: {Label: "Aceito", Tone: ToneSuccess, Icon: "●"},
	QuoteStatusRejected: {Label: "Recusado", Tone: ToneDanger, Icon: "✕"},
	QuoteStatusExpired:  {Label: "Expirado", Tone: ToneMuted, Icon: "◌"},
}

// DescribeQuote returns the presentation descriptor for a quote status.
func DescribeQuote(status string) Descriptor {
	if d, ok := quoteDescriptors[strings.ToUpper(strings.TrimSpace(status))]; ok {
		return d
	}
	return statusDescriptors[StatusUnknown]
}

// ClientTimeline is the stage progression a client sees on their request.
func ClientTimeline() []Status {
	return []Status{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted}
}

// ProfessionalTimeline is the stage progression a professional sees on a job.
func ProfessionalTimeline() []Status {
	return []Status{StatusAccepted, StatusInProgress, StatusCompleted}
}

// StageIndex returns the position of status within timeline.
// Statuses not on the timeline (cancelled, unknown) map to the first stage.
func StageIndex(timeline []Status, status Status) int {
	for i, s := range timeline {
		if s == status {
			return i
		}
	}
	return 0
}

// ShowTimeline reports whether a timeline should render at all.
// A cancelled request has no progression to show.
func ShowTimeline(s Status) bool {
	return s != StatusCancelled
}

// CanStart reports whether a professional may start the job.
func CanStart(s Status) bool {
	return s == StatusAccepted
}

// CanComplete reports whether a professional may mark the job complete.
func CanComplete(s Status) bool {
	return s == StatusInProgress
}

// CanCancel reports whether a client may still cancel the request.
func CanCancel(s Status) bool {
	return s == StatusPending
}

// CanAcceptQuote reports whether the request still accepts quote decisions.
func CanAcceptQuote(s Status) bool {
	return s == StatusPending
}
