package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
	"github.com/xlab/treeprint"

	"github.com/willibrandon/vimarcade/internal/quiz"
	"github.com/willibrandon/vimarcade/internal/storage"
	"github.com/willibrandon/vimarcade/internal/ui/components"
)

const nameWidth = 20

var (
	dim    = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	accent = color.New(color.FgCyan, color.Bold).SprintFunc()
	good   = color.New(color.FgGreen).SprintFunc()
)

func truncateName(name string, width int) string {
	return runewidth.Truncate(name, width, "…")
}

func formatWhen(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// leaderboardRows builds the scores table with a header row.
func leaderboardRows(players []storage.PlayerRecord, now time.Time) pterm.TableData {
	rows := pterm.TableData{{"#", "Player", "Played", "Best", "Last played"}}
	for i, p := range players {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncateName(p.Username, nameWidth),
			humanize.Comma(int64(p.TimesPlayed)),
			humanize.Comma(int64(p.HighestScore)),
			formatWhen(p.LastPlayed, now),
		})
	}
	return rows
}

func renderLeaderboard(players []storage.PlayerRecord, now time.Time) (string, error) {
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(leaderboardRows(players, now)).
		Srender()
}

// scoreHistory returns the scores oldest first.
func scoreHistory(results []storage.GameResult) []float64 {
	data := make([]float64, len(results))
	for i, r := range results {
		data[len(results)-1-i] = float64(r.Score)
	}
	return data
}

func renderPlayer(rec storage.PlayerRecord, results []storage.GameResult, dateFormat string, now time.Time) string {
	out := fmt.Sprintf("%s\n", accent(rec.Username))
	out += fmt.Sprintf("  %s %s\n", dim("Games played:"), bold(humanize.Comma(int64(rec.TimesPlayed))))
	out += fmt.Sprintf("  %s %s\n", dim("High score:  "), good(humanize.Comma(int64(rec.HighestScore))))
	out += fmt.Sprintf("  %s %s\n", dim("Playing since:"), rec.CreatedAt.Local().Format(dateFormat))
	out += fmt.Sprintf("  %s %s\n", dim("Last played: "), formatWhen(rec.LastPlayed, now))

	if len(results) == 0 {
		return out
	}

	out += fmt.Sprintf("\n%s\n", bold("Recent games"))
	for _, r := range results {
		line := fmt.Sprintf("  %-16s score %3d  %d/%d correct", r.PlayedAt.Local().Format(dateFormat), r.Score, r.Correct, r.Answered)
		if r.Hints > 0 {
			line += fmt.Sprintf("  %d hint(s)", r.Hints)
		}
		if r.AvgResponse > 0 {
			line += dim(fmt.Sprintf("  avg %.1fs", r.AvgResponse.Seconds()))
		}
		out += line + "\n"
	}

	if len(results) >= 2 {
		history := scoreHistory(results)
		out += "\n" + components.ScoreChart.Plot(history, max(10, len(history)*2)) + "\n"
		out += fmt.Sprintf("%s %s  %s\n", dim("Trend:"), components.ScoreChart.Trend(history), components.ScoreChart.Spark(history, 30))
	}
	return out
}

// questionTree groups the catalog by category in display order.
func questionTree(bank *quiz.Bank) string {
	byCategory := bank.ByCategory()
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s %s", bold("Questions"), dim(fmt.Sprintf("(%d)", bank.Len()))))

	for _, cat := range quiz.Categories {
		questions := byCategory[cat]
		if len(questions) == 0 {
			continue
		}
		branch := tree.AddBranch(fmt.Sprintf("%s %s", accent(string(cat)), dim(fmt.Sprintf("(%d)", len(questions)))))
		for _, q := range questions {
			branch.AddNode(fmt.Sprintf("%s  %s", q.Prompt, good(q.Hint())))
		}
	}
	return tree.String()
}
