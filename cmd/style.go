package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
	"github.com/luca-patrignani/hand-sampler/sampling"
)

func printHeader() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("and ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ampler", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func printResult(res sampling.Result) error {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := fmt.Sprintf("Samples: %d\nHand size: %d\nMode: %s\nElapsed: %s", res.Samples, res.HandSize, res.Mode, res.Elapsed.Round(time.Millisecond))
	pbox.WithTitle(pterm.LightGreen("|RUN|")).WithTitleTopCenter().Println(info)

	return pterm.DefaultTable.WithHasHeader().WithData(resultTableData(res)).Render()
}

func resultTableData(res sampling.Result) pterm.TableData {
	data := pterm.TableData{{"Category", "Hits", "Percent"}}
	for _, row := range res.Rows() {
		data = append(data, []string{
			row.Category.String(),
			strconv.Itoa(row.Hits),
			strconv.FormatFloat(row.Percent, 'f', 3, 64) + "%",
		})
	}
	if res.Mode != sampling.ModeAll {
		data = append(data, []string{"Nothing", strconv.Itoa(res.Empty), strconv.FormatFloat(percent(res.Empty, res.Samples), 'f', 3, 64) + "%"})
	}
	return data
}

func matchTableData(matches []poker.Match) pterm.TableData {
	data := pterm.TableData{{"Category", "Cards", "Rest"}}
	for _, m := range matches {
		data = append(data, []string{m.Category.String(), joinCards(m.Cards), joinCards(m.Rest)})
	}
	return data
}

func joinCards(cards []poker.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
