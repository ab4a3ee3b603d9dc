package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/card-ecs/domain/card"
	"github.com/luca-patrignani/card-ecs/domain/poker"
	"github.com/luca-patrignani/card-ecs/ledger"
)

func printRound(round int, hand []card.Card, result poker.Result, description string, remaining int) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{handPanel(round, hand)},
		{resultPanel(result, description, remaining)},
	}).Render()
}

func handPanel(round int, hand []card.Card) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(10).WithRightPadding(10).WithTopPadding(1).WithBottomPadding(1)
	title := "Round " + strconv.Itoa(round)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(handString(hand))}
}

func resultPanel(result poker.Result, description string, remaining int) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("%s for %d points", pterm.LightCyan(result.Category.String()), result.BaseScore)
	if description != "" {
		info += pterm.Sprintfln("%s", description)
	}
	info += pterm.Sprintf("Cards left: %d", remaining)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|RESULT|")).WithTitleTopCenter().Sprint(info)}
}

func handString(hand []card.Card) string {
	if len(hand) == 0 {
		return pterm.LightRed("empty hand")
	}
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = cardString(c)
	}
	return strings.Join(parts, " - ")
}

func cardString(c card.Card) string {
	if c.Suit.Red() {
		return pterm.LightRed(c.String())
	}
	return pterm.LightWhite(c.String())
}

func printLedger(chain *ledger.Chain) {
	data := [][]string{{"#", "Round", "Action", "Cards", "Result"}}
	for _, b := range chain.Blocks() {
		round := b.Metadata.RoundID
		if len(round) > 8 {
			round = round[:8]
		}
		result := ""
		if b.Action.Category != "" {
			result = b.Action.Category + " (" + strconv.Itoa(b.Action.Score) + ")"
		}
		data = append(data, []string{
			strconv.Itoa(b.Index),
			round,
			string(b.Action.Type),
			strings.Join(b.Action.Cards, " "),
			result,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
