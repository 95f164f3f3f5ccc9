package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/fengate/internal/chess"
	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/errors"
	"github.com/lgbarn/fengate/internal/hashing"
	"github.com/lgbarn/fengate/internal/notation"
	"github.com/lgbarn/fengate/internal/worker"
)

// fengate validate
func Validate(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate notation",
		Short: "List the problems decode would silently tolerate",
		Long: heredoc.Doc(`validate prints one line per problem found in the notation
			and exits with an error when there are any. With --strict the
			record is also checked by a full FEN decoder, which only
			accepts KQkq castling rights.`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := oneNotation(args, "")
			issues := notation.Validate(text)
			if strict, _ := cmd.Flags().GetBool("strict"); strict && len(issues) == 0 {
				if err := notation.CheckStandard(text); err != nil {
					issues = append(issues, err)
				}
			}

			for _, issue := range issues {
				printf(cmd, "%v\n", issue)
			}
			if len(issues) > 0 {
				return errors.Wrapf(errors.ErrInvalidFEN, "%d problem(s) found", len(issues))
			}
			printf(cmd, "ok\n")
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "Also check the record with a full FEN decoder")
	return cmd
}

// fengate batch
func Batch(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch file",
		Short: "Decode and check every line of a file",
		Long: heredoc.Doc(`batch reads one notation per line, decodes each onto its own
			board on a pool of workers, and prints a tab-separated line
			per input in input order: line number, snapshot, number of
			pieces, and ok or the count of problems found. With
			--duplicates a fifth column names the earlier line holding
			the same placement.

			Blank lines and lines starting with # are skipped.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			showDups, _ := cmd.Flags().GetBool("duplicates")

			lines, numbers, err := readLines(args[0])
			if err != nil {
				return err
			}

			codec := notation.NewCodec(nil, notation.WithLogger(logrus.StandardLogger()))
			process := func(item worker.WorkItem) worker.ProcessResult {
				b := chess.NewBoard()
				codec.Decode(b, item.Line)
				return worker.ProcessResult{
					Index:    item.Index,
					Line:     item.Line,
					Snapshot: notation.Encode(b),
					Pieces:   b.Count(),
					Position: hashing.Sign(b),
					Issues:   notation.Validate(item.Line),
				}
			}

			results, err := worker.ProcessLines(cmd.Context(), lines, process,
				worker.WithWorkers(workers), worker.WithBufferSize(2*workers))
			if err != nil {
				return err
			}

			bad := 0
			dups := hashing.NewDuplicateDetector()
			for _, r := range results {
				status := "ok"
				if !r.OK() {
					bad++
					status = fmt.Sprintf("%d problem(s)", len(r.Issues))
					for _, issue := range r.Issues {
						logrus.WithField("line", numbers[r.Index]).Debug(issue)
					}
				}
				printf(cmd, "%d\t%s\t%d\t%s", numbers[r.Index], r.Snapshot, r.Pieces, status)
				if first, dup := dups.CheckAndAdd(r.Position, r.Index); dup && showDups {
					printf(cmd, "\tduplicate of %d", numbers[first])
				}
				printf(cmd, "\n")
			}

			logrus.WithFields(logrus.Fields{
				"lines":      len(results),
				"invalid":    bad,
				"unique":     dups.UniqueCount(),
				"duplicates": dups.DuplicateCount(),
				"workers":    workers,
			}).Info("batch finished")

			if bad > 0 {
				return errors.Wrapf(errors.ErrInvalidFEN, "%d of %d lines have problems", bad, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntP("workers", "w", cfg.Workers, "Number of worker goroutines")
	cmd.Flags().Bool("duplicates", false, "Mark lines repeating an earlier placement")
	return cmd
}

// readLines returns the non-blank, non-comment lines of path along with
// their 1-based line numbers.
func readLines(path string) ([]string, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var lines []string
	var numbers []int
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
		numbers = append(numbers, n)
	}
	return lines, numbers, scanner.Err()
}
