// SPDX-License-Identifier: MIT
package agd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/agd/lexer"
	"gitlab.com/fisherprime/agd/types"
)

const violationBufferSize = 10

// Evaluation errors.
var (
	ErrSourceNotReady = errors.New("this source file is not ready for review, yet")
	ErrIssuesPresent  = errors.New("issues to fix")
)

// Evaluate tokenizes input & runs the three independent checks over it,
// collecting their violations.
//
// A hard lexical error is returned immediately, wrapping ErrSourceNotReady;
// no violations accompany it. Otherwise the checks run concurrently on a
// goroutine pool & a nonzero violation count yields ErrIssuesPresent
// together with a trailing failure summary Violation.
func Evaluate(ctx context.Context, cfg *Config, input string) (violations []Violation, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.Validate()

	l := lexer.New(lexer.WithLogger(cfg.Logger), lexer.WithDebug(cfg.Debug))
	if err = l.Feed(input); err != nil {
		err = fmt.Errorf("%w: %v", ErrSourceNotReady, err)
		return
	}

	tokens := l.Tokens()
	if cfg.Debug {
		cfg.Logger.Debugf("token sequence: %s", spew.Sprint(tokens))
	}

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		checks := []func() []Violation{
			func() []Violation { return CheckLineWidth(input, cfg.LineWidthLimit) },
			func() []Violation { return CheckTypos(tokens) },
			func() []Violation { return CheckSyntax(tokens) },
		}

		var pool *ants.Pool
		if pool, err = ants.NewPool(len(checks)); err != nil {
			return
		}
		defer pool.Release()

		counter := new(types.SafeCounter)
		violationChan := make(chan Violation, violationBufferSize)

		wg := new(sync.WaitGroup)
		wg.Add(len(checks))
		for index := range checks {
			check := checks[index]

			if submitErr := pool.Submit(func() {
				defer wg.Done()

				for _, violation := range check() {
					counter.Inc()
					violationChan <- violation
				}
			}); submitErr != nil {
				wg.Done()
				err = submitErr
			}
		}
		go func() {
			wg.Wait()
			close(violationChan)
		}()

		for violation := range violationChan {
			violations = append(violations, violation)
		}
		if err != nil {
			return
		}

		sum := counter.Value()
		if sum < 1 {
			return
		}

		plural := "s"
		if sum == 1 {
			plural = ""
		}
		violations = append(violations, Violation{
			Severity: SeverityMajor,
			Tag:      failureTag,
			Message:  fmt.Sprintf("due to %d issue%s to fix.", sum, plural),
		})

		err = fmt.Errorf("%w: %d", ErrIssuesPresent, sum)
	}

	return
}
