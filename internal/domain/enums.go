package domain

import (
	"fmt"
	"strings"
)

type Priority string
type QueueType string
type ThreadMode string
type ClosureType string
type LoadLevel string
type PredictionDepth string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"

	QueueAction     QueueType = "action"
	QueueReference  QueueType = "reference"
	QueueBackburner QueueType = "backburner"

	ThreadModeForeground ThreadMode = "foreground"
	ThreadModeBackground ThreadMode = "background"

	ClosureDone      ClosureType = "done"
	ClosurePaused    ClosureType = "paused"
	ClosureAbandoned ClosureType = "abandoned"

	LoadLow    LoadLevel = "low"
	LoadMedium LoadLevel = "medium"
	LoadHigh   LoadLevel = "high"

	DepthLow    PredictionDepth = "low"
	DepthMedium PredictionDepth = "medium"
	DepthDeep   PredictionDepth = "deep"
)

func ParsePriority(raw string) (Priority, error) {
	switch p := Priority(normalizeEnum(raw)); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want high, medium or low)", ErrInvalidPriority, raw)
	}
}

func ParseQueueType(raw string) (QueueType, error) {
	switch q := QueueType(normalizeEnum(raw)); q {
	case QueueAction, QueueReference, QueueBackburner:
		return q, nil
	default:
		return "", fmt.Errorf("%w %q (want action, reference or backburner)", ErrInvalidQueue, raw)
	}
}

func ParseThreadMode(raw string) (ThreadMode, error) {
	switch m := ThreadMode(normalizeEnum(raw)); m {
	case ThreadModeForeground, ThreadModeBackground:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q (want foreground or background)", ErrInvalidThreadMode, raw)
	}
}

func ParseClosureType(raw string) (ClosureType, error) {
	switch c := ClosureType(normalizeEnum(raw)); c {
	case ClosureDone, ClosurePaused, ClosureAbandoned:
		return c, nil
	default:
		return "", fmt.Errorf("%w %q (want done, paused or abandoned)", ErrInvalidClosureType, raw)
	}
}

func ParseLoadLevel(raw string) (LoadLevel, error) {
	switch l := LoadLevel(normalizeEnum(raw)); l {
	case LoadLow, LoadMedium, LoadHigh:
		return l, nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidLoadLevel, raw)
	}
}

func ParsePredictionDepth(raw string) (PredictionDepth, error) {
	switch d := PredictionDepth(normalizeEnum(raw)); d {
	case DepthLow, DepthMedium, DepthDeep:
		return d, nil
	default:
		return "", fmt.Errorf("%w %q (want low, medium or deep)", ErrInvalidDepth, raw)
	}
}

func normalizeEnum(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", name, ErrEmptyField)
	}
	return nil
}
