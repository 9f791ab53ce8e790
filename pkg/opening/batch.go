package opening

import (
	"errors"

	"github.com/chazu/voidcut/pkg/kernel"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPrompt is shown when asking the user for a wall.
	DefaultPrompt = "Select Wall"

	// DefaultTransactionName labels the host transaction of one batch.
	DefaultTransactionName = "Insert wall openings"
)

// Skipped records a placeholder left in place and why.
type Skipped struct {
	Placeholder PlaceholderRef
	Reason      error
}

// Report is the outcome of a batch.
type Report struct {
	Wall      WallRef
	Openings  []Opening
	Skipped   []Skipped
	Committed bool
	DryRun    bool
}

// Batch inserts openings for every placeholder touching one wall inside a
// single host transaction. Either all openings it produced are committed or
// none are.
type Batch struct {
	Host            Host
	Driver          *Driver
	Log             logrus.FieldLogger
	Prompt          string
	TransactionName string

	// DryRun computes the openings without opening a transaction or
	// changing the host model.
	DryRun bool
}

// NewBatch returns a batch with the default prompt and transaction name.
func NewBatch(h Host, k kernel.Intersector, log logrus.FieldLogger) *Batch {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Batch{
		Host:            h,
		Driver:          NewDriver(h, k, log),
		Log:             log,
		Prompt:          DefaultPrompt,
		TransactionName: DefaultTransactionName,
	}
}

// Run asks the user for a wall and processes it. A cancelled prompt returns
// ErrUserCancelled before any transaction is opened.
func (b *Batch) Run() (*Report, error) {
	wall, err := b.Host.PickWall(b.Prompt)
	if errors.Is(err, ErrUserCancelled) {
		b.Log.Info("wall selection cancelled")
		return nil, err
	}
	if err != nil {
		return nil, hostErr("pickWall", err)
	}
	return b.RunWall(wall)
}

// RunWall processes every placeholder the host reports for wall, in host
// order. Placeholders failing with a Skippable error stay in the model and
// are listed in the report. Any other error rolls the transaction back and
// is returned with a nil report.
func (b *Batch) RunWall(wall WallRef) (*Report, error) {
	log := b.Log.WithField("wall", wall)

	candidates, err := b.Host.IntersectingInstances(wall)
	if err != nil {
		return nil, hostErr("findIntersectingInstances", err)
	}
	log.WithField("candidates", len(candidates)).Debug("collected placeholders")

	report := &Report{Wall: wall, DryRun: b.DryRun}
	if b.DryRun {
		return b.dryRun(report, candidates)
	}

	tx, err := b.Host.Begin(b.TransactionName)
	if err != nil {
		return nil, hostErr("beginTransaction", err)
	}
	// Everything short of a successful commit, a panic included, rolls back.
	defer func() {
		if report.Committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.WithError(rbErr).Error("rollback failed")
		}
	}()

	for _, p := range candidates {
		op, err := b.Driver.Insert(wall, p)
		if Skippable(err) {
			b.skip(report, p, err)
			continue
		}
		if err != nil {
			log.WithError(err).WithField("placeholder", p).Error("rolling back wall openings")
			return nil, err
		}
		report.Openings = append(report.Openings, op)
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("rolling back wall openings")
		return nil, hostErr("commit", err)
	}
	report.Committed = true

	log.WithFields(logrus.Fields{
		"openings": len(report.Openings),
		"skipped":  len(report.Skipped),
	}).Info("committed wall openings")
	return report, nil
}

func (b *Batch) dryRun(report *Report, candidates []PlaceholderRef) (*Report, error) {
	for _, p := range candidates {
		min, max, err := b.Driver.Compute(report.Wall, p)
		if Skippable(err) {
			b.skip(report, p, err)
			continue
		}
		if err != nil {
			return nil, err
		}
		report.Openings = append(report.Openings, Opening{Wall: report.Wall, Placeholder: p, Min: min, Max: max})
	}
	return report, nil
}

func (b *Batch) skip(report *Report, p PlaceholderRef, err error) {
	b.Log.WithFields(logrus.Fields{
		"wall":        report.Wall,
		"placeholder": p,
		"reason":      err,
	}).Warn("skipping placeholder")
	report.Skipped = append(report.Skipped, Skipped{Placeholder: p, Reason: err})
}
