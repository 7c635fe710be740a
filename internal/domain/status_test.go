package domain

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{"exact", "PENDING", StatusPending},
		{"lowercase", "completed", StatusCompleted},
		{"mixed case", "In_Progress", StatusInProgress},
		{"surrounding space", "  ACCEPTED ", StatusAccepted},
		{"cancelled", "CANCELLED", StatusCancelled},
		{"unrecognized", "ARCHIVED", StatusUnknown},
		{"empty", "", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatus(tt.raw); got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDescribeIsTotal(t *testing.T) {
	statuses := []Status{
		StatusPending, StatusAccepted, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusUnknown,
		Status("SOMETHING_ELSE"),
	}
	for _, s := range statuses {
		d := Describe(s)
		if d.Label == "" {
			t.Errorf("Describe(%v) has empty label", s)
		}
		if d.Icon == "" {
			t.Errorf("Describe(%v) has empty icon", s)
		}
	}
}

func TestDescribeQuote(t *testing.T) {
	if got := DescribeQuote("accepted").Label; got != "Aceito" {
		t.Errorf("DescribeQuote(accepted).Label = %q, want Aceito", got)
	}
	if got := DescribeQuote("bogus").Label; got != "Desconhecido" {
		t.Errorf("DescribeQuote(bogus).Label = %q, want Desconhecido", got)
	}
}

func TestStageIndex(t *testing.T) {
	client := ClientTimeline()
	pro := ProfessionalTimeline()

	tests := []struct {
		name     string
		timeline []Status
		status   Status
		want     int
	}{
		{"client pending", client, StatusPending, 0},
		{"client in progress", client, StatusInProgress, 2},
		{"client completed", client, StatusCompleted, 3},
		{"client cancelled falls to start", client, StatusCancelled, 0},
		{"client unknown falls to start", client, StatusUnknown, 0},
		{"professional accepted", pro, StatusAccepted, 0},
		{"professional completed", pro, StatusCompleted, 2},
		{"professional pending falls to start", pro, StatusPending, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StageIndex(tt.timeline, tt.status); got != tt.want {
				t.Errorf("StageIndex(%v) = %d, want %d", tt.status, got, tt.want)
			}
		})
	}
}

func TestTransitions(t *testing.T) {
	if !CanStart(StatusAccepted) || CanStart(StatusPending) {
		t.Error("CanStart should only allow ACCEPTED")
	}
	if !CanComplete(StatusInProgress) || CanComplete(StatusAccepted) {
		t.Error("CanComplete should only allow IN_PROGRESS")
	}
	if !CanCancel(StatusPending) || CanCancel(StatusInProgress) {
		t.Error("CanCancel should only allow PENDING")
	}
	if !CanAcceptQuote(StatusPending) || CanAcceptQuote(StatusAccepted) {
		t.Error("CanAcceptQuote should only allow PENDING")
	}
	if ShowTimeline(StatusCancelled) {
		t.Error("cancelled requests should not render a timeline")
	}
	if !ShowTimeline(StatusPending) {
		t.Error("pending requests should render a timeline")
	}
}
