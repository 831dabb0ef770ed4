package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare/models"
)

// Prompter asks the user for a selection, re-asking until the answer is in
// the accepted vocabulary.
type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	cities []string
}

// New creates a Prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer, cities []string) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out, cities: cities}
}

// Selection asks for a city, a month and a day.
// It returns io.EOF when input runs out.
func (p *Prompter) Selection() (models.Selection, error) {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	city, err := p.choose("please select a city among: ", p.cities)
	if err != nil {
		return models.Selection{}, err
	}

	monthName, err := p.choose("please select a month among: ", models.MonthNames)
	if err != nil {
		return models.Selection{}, err
	}
	month, err := models.ParseMonth(monthName)
	if err != nil {
		return models.Selection{}, err
	}

	dayName, err := p.choose("please select a day among: ", append([]string{models.AllValue}, models.DayNames...))
	if err != nil {
		return models.Selection{}, err
	}
	day, err := models.ParseDay(dayName)
	if err != nil {
		return models.Selection{}, err
	}

	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	return models.Selection{City: city, Month: month, Day: day}, nil
}

// Confirm asks a yes/no question. Anything but "yes" is a no;
// running out of input is a no as well.
func (p *Prompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "\n%s Enter yes or no.\n", question)
	answer, err := p.readLine()
	if err != nil {
		return false
	}
	return answer == "yes"
}

func (p *Prompter) choose(question string, allowed []string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s%s:\n", question, strings.Join(allowed, ", "))
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		for _, a := range allowed {
			if a == answer {
				return answer, nil
			}
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), nil
}
