// checkin is a terminal check-in client for desks without a browser:
// type to search, pick a result, then enter 1 or 2 to record the meals.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mealdesk/internal/checkin"
)

func main() {
	server := flag.String("server", "http://localhost:8090", "meal service base URL")
	flag.Parse()

	sess := checkin.NewSession(checkin.NewClient(*server), checkin.Options{})
	sess.OnChange(func() { render(sess) })
	sess.Start(context.Background())
	defer sess.Close()

	fmt.Println("meal check-in — type a name to search, 'pick N' to select,")
	fmt.Println("'1' or '2' to record meals, 'cancel' to clear, 'quit' to exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "quit" || line == "exit":
			return
		case line == "cancel":
			sess.Cancel()
		case line == "1" || line == "2":
			qty, _ := strconv.Atoi(line)
			submit(sess, qty)
		case strings.HasPrefix(line, "pick "):
			n, err := strconv.Atoi(strings.TrimPrefix(line, "pick "))
			if err != nil || sess.Select(n-1) != nil {
				fmt.Println("no such result")
			}
		default:
			sess.Input(line)
		}
	}
}

func submit(sess *checkin.Session, qty int) {
	guest := sess.Selected()
	if guest == nil {
		fmt.Println("select a guest first ('pick N')")
		return
	}
	err := sess.Submit(qty)
	switch {
	case errors.Is(err, checkin.ErrDuplicateMeal):
		fmt.Printf("%s has already received a meal today.\n", guest.FullName)
	case err != nil:
		fmt.Println("Failed to record meal. Please try again.")
	}
}

func render(sess *checkin.Session) {
	switch sess.State() {
	case checkin.StateResultsShown:
		results := sess.Results()
		if len(results) == 0 {
			fmt.Printf("\nno guests found matching %q\n> ", sess.Query())
			return
		}
		fmt.Println()
		for i, g := range results {
			fmt.Printf("  %d. %s (ID: %s, %s)\n", i+1, g.DisplayName(), g.ExternalID, g.HousingStatus)
		}
		fmt.Print("> ")
	case checkin.StateGuestSelected:
		if g := sess.Selected(); g != nil && sess.LastError() == nil {
			fmt.Printf("\nselected %s — enter 1 or 2 to record meals\n> ", g.DisplayName())
		}
	case checkin.StateIdle:
		if h := sess.History(); len(h) > 0 {
			last := h[0]
			fmt.Printf("\nrecorded %d meal(s) for %s — %d meals today\n> ",
				last.Quantity, last.Guest.DisplayName(), sess.Total())
		}
	}
}
