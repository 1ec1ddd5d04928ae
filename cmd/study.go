package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minhokang/baeum/internal/answer"
	"github.com/minhokang/baeum/internal/config"
	"github.com/minhokang/baeum/internal/contentpack"
	"github.com/minhokang/baeum/internal/engine"
	"github.com/minhokang/baeum/internal/selector"
	"github.com/minhokang/baeum/internal/srs"
	"github.com/minhokang/baeum/internal/store"
)

const (
	failureWindow = time.Hour
	// sessionHorizon keeps cards on short learning steps selectable
	// within the running session.
	sessionHorizon = 10 * time.Minute
)

var studyCmd = &cobra.Command{
	Use:   "study <pack.json>",
	Short: "Start a study session",
	Long: `Start an interactive study session with the given content pack.

Type your answer and press enter. During a card:
  ?    reveal a hint (repeat for more)
  !    give up and show the answer
  q    end the session`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyStudyFlags(cmd, cfg)

		pack, err := loadPack(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		s := &session{
			cfg:      cfg,
			pack:     pack,
			store:    st,
			engine:   newEngineFromConfig(cfg),
			limit:    limit,
			in:       bufio.NewScanner(os.Stdin),
			out:      cmd.OutOrStdout(),
			log:      newLogger(cfg).WithField("component", "study"),
			reviewed: make(map[string]srs.MemoryState),
		}
		return s.run(cmd.Context())
	},
}

func init() {
	studyCmd.Flags().Int("limit", 0, "Stop after this many cards (0 = until the pool empties)")
	studyCmd.Flags().Bool("focus", false, "Focus mode: shorter learning steps for cram sessions")
	studyCmd.Flags().Float64("retention", 0, "Target retention (0.80-0.95)")
	studyCmd.Flags().Bool("no-interleave", false, "Disable category interleaving")
}

func applyStudyFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetBool("focus"); v {
		cfg.Scheduler.FocusMode = true
	}
	if v, _ := cmd.Flags().GetFloat64("retention"); v != 0 {
		cfg.Scheduler.TargetRetention = v
	}
	if v, _ := cmd.Flags().GetBool("no-interleave"); v {
		cfg.Study.Interleave = false
	}
}

func newEngineFromConfig(cfg *config.Config) *engine.Engine {
	return engine.New(engine.Config{
		Scheduler:       srs.Choice(cfg.Scheduler.Algorithm),
		TargetRetention: cfg.Scheduler.TargetRetention,
		FocusMode:       cfg.Scheduler.FocusMode,
		Interleave:      cfg.Study.Interleave,
	})
}

// session drives one interactive study run.
type session struct {
	cfg    *config.Config
	pack   *contentpack.Pack
	store  *store.Store
	engine *engine.Engine
	limit  int
	in     *bufio.Scanner
	out    io.Writer
	log    *logrus.Entry

	// reviewed overlays stored states so the pool reflects this run
	// without a re-query per card.
	reviewed map[string]srs.MemoryState
}

func (s *session) run(ctx context.Context) error {
	states, err := s.store.ProgressRepo().All(ctx)
	if err != nil {
		return err
	}
	shown := 0
	for s.limit == 0 || shown < s.limit {
		now := time.Now()
		for id, state := range s.reviewed {
			states[id] = state
		}
		failures, err := s.store.ReviewLogRepo().LastFailures(ctx, now.Add(-failureWindow))
		if err != nil {
			return err
		}
		lastReviews, err := s.store.ReviewLogRepo().LastReviews(ctx)
		if err != nil {
			return err
		}

		pool := engine.BuildPool(s.pack, states, failures, lastReviews, now, sessionHorizon)
		card, err := s.engine.SelectNext(pool, now)
		if errors.Is(err, engine.ErrPoolExhausted) {
			fmt.Fprintln(s.out, "\nNothing left to review. 잘 했어요!")
			return nil
		}
		if err != nil {
			return err
		}

		done, err := s.drill(ctx, card)
		if err != nil {
			return err
		}
		if done {
			fmt.Fprintln(s.out, "\nSession ended.")
			return nil
		}
		shown++
	}
	fmt.Fprintln(s.out, "\nCard limit reached.")
	return nil
}

// drill runs one card from prompt to graded result. Returns done=true when
// the learner quits.
func (s *session) drill(ctx context.Context, card selector.Candidate) (bool, error) {
	fmt.Fprintf(s.out, "\n[%s] %s\n", card.Category, card.Prompt)

	hintLevel := 0
	retried := false
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return true, s.in.Err()
		}
		input := strings.TrimSpace(s.in.Text())

		switch input {
		case "q":
			return true, nil
		case "?":
			hintLevel++
			fmt.Fprintln(s.out, "  hint:", s.engine.Hint(card.Answer, hintLevel))
			continue
		case "!":
			fmt.Fprintln(s.out, "  answer:", card.Answer)
			return false, s.record(ctx, card, srs.QualityAgain, false, hintLevel)
		}

		res, err := s.engine.Validate(input, card.Answer, hintLevel > 0)
		if err != nil {
			return false, fmt.Errorf("card %q: %w", card.ID, err)
		}

		switch res.Result {
		case answer.ResultCorrect:
			fmt.Fprintln(s.out, "  ✓")
		case answer.ResultCloseEnough:
			fmt.Fprintln(s.out, "  ✓ close enough:", card.Answer)
		case answer.ResultPartialMatch:
			if res.AllowsRetry && !retried {
				retried = true
				fmt.Fprintln(s.out, "  almost — be more specific")
				continue
			}
			fmt.Fprintln(s.out, "  partial. answer:", card.Answer)
		case answer.ResultIncorrect:
			fmt.Fprintln(s.out, "  ✗ answer:", card.Answer)
		}
		return false, s.record(ctx, card, res.Quality, res.Result.IsCorrect(), hintLevel)
	}
}

func (s *session) record(ctx context.Context, card selector.Candidate, quality int, correct bool, hints int) error {
	now := time.Now()
	state, err := s.engine.Report(card.ID, card.Memory, quality, now)
	if err != nil {
		return fmt.Errorf("record review for %q: %w", card.ID, err)
	}
	if err := s.store.ProgressRepo().Upsert(ctx, card.ID, state); err != nil {
		return err
	}
	err = s.store.ReviewLogRepo().Append(ctx, store.ReviewRecord{
		CardID:    card.ID,
		Quality:   quality,
		Correct:   correct,
		HintsUsed: hints,
		StudyMode: "online",
		Timestamp: now,
	})
	if err != nil {
		return err
	}
	s.reviewed[card.ID] = state
	s.log.WithFields(logrus.Fields{
		"card": card.ID, "quality": quality, "next": state.NextReview,
	}).Debug("review persisted")
	return nil
}
