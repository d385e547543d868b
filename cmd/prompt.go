package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The wizard prompts re-ask on invalid input instead of failing: a typo
// in an interactive session is not an error. Engine errors, on the
// other hand, propagate unmodified.

// promptNumber asks for a numeric value between min and max, re-asking
// until it gets a valid one. An empty answer selects the default.
func promptNumber(r *bufio.Reader, w io.Writer, label string, def, min, max float64) (float64, error) {
	for {
		fmt.Fprintf(w, "%s (default: %g): ", label, def)
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				return 0, err
			}
			return def, nil
		}

		v, perr := strconv.ParseFloat(line, 64)
		switch {
		case perr != nil:
			fmt.Fprintln(w, "  please enter a valid number")
		case v < min:
			fmt.Fprintf(w, "  must be at least %g\n", min)
		case v > max:
			fmt.Fprintf(w, "  must be at most %g\n", max)
		default:
			return v, nil
		}
		if err != nil {
			// no more input is coming
			return 0, err
		}
	}
}

// promptChoice displays numbered options and asks until one is picked.
// It returns the zero-based index of the choice.
func promptChoice(r *bufio.Reader, w io.Writer, label string, options []string) (int, error) {
	fmt.Fprintln(w, label)
	for i, option := range options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, option)
	}
	for {
		fmt.Fprint(w, "Enter choice: ")
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)

		if choice, perr := strconv.Atoi(line); perr == nil && choice >= 1 && choice <= len(options) {
			return choice - 1, nil
		}
		fmt.Fprintf(w, "  please enter a number between 1 and %d\n", len(options))
		if err != nil {
			return 0, err
		}
	}
}

// promptYesNo asks a yes/no question; an empty answer selects def.
func promptYesNo(r *bufio.Reader, w io.Writer, label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(w, "%s (%s): ", label, hint)
		line, err := r.ReadString('\n')
		line = strings.ToLower(strings.TrimSpace(line))

		switch line {
		case "":
			if err != nil {
				return false, err
			}
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(w, "  please answer y or n")
		if err != nil {
			return false, err
		}
	}
}

// promptString asks for a free-form value; an empty answer selects def.
func promptString(r *bufio.Reader, w io.Writer, label, def string) (string, error) {
	fmt.Fprintf(w, "%s (default: %s): ", label, def)
	line, err := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err != nil {
			return "", err
		}
		return def, nil
	}
	return line, nil
}
