// internal/console/console.go
//
// Text front-end: menus for theme and level, then a prompt loop per round.
//
// Commands during a round:
//   <letra>   guess a letter
//   ?         show the hint
//   !         guess the whole word (asks for it), or !palavra inline
//   sair      quit the game
//
// The console owns one UsedSet for the whole session so words do not repeat
// until a theme runs out.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/forca/internal/game"
	"github.com/robalobadob/forca/internal/render"
	"github.com/robalobadob/forca/internal/selection"
	"github.com/robalobadob/forca/internal/words"
)

const (
	optionRandom = "ALEATÓRIO"
	optionExit   = "SAIR"
	optionYes    = "SIM"
	optionNo     = "NÃO"
)

var levelOptions = []string{"A", "B", "C", "TODOS"}

// errInputClosed ends the session when stdin is exhausted.
var errInputClosed = errors.New("input closed")

type result int

const (
	resultQuit result = iota
	resultWon
	resultLost
)

// Console runs interactive sessions over a reader/writer pair.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	bank   *words.Bank
	picker *selection.Picker
	used   *selection.UsedSet
}

// New wires a console to its input, output, bank and picker.
func New(in io.Reader, out io.Writer, bank *words.Bank, picker *selection.Picker) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		bank:   bank,
		picker: picker,
		used:   selection.NewUsedSet(),
	}
}

// Run plays rounds until the player quits or input ends.
func (c *Console) Run() error {
	themes := c.bank.Themes()
	menu := append(append([]string(nil), themes...), optionRandom, optionExit)
	c.println("\n🎉 Bem-vindo ao Jogo da Forca! (versão educativa 6+)")

	for {
		theme, err := c.choose("Escolha um tema", menu)
		if err != nil {
			return c.closed(err)
		}
		if theme == optionExit {
			c.println("Até logo! 👋")
			return nil
		}
		if theme == optionRandom {
			theme = c.picker.RandomTheme(themes)
		}

		choice, err := c.choose("Escolha o nível", levelOptions)
		if err != nil {
			return c.closed(err)
		}
		level, _ := words.ParseLevel(choice)

		rec, err := c.picker.Pick(selection.FilterByLevel(c.bank.Records(theme), level), c.used)
		if errors.Is(err, selection.ErrNoCandidates) {
			c.println("Não há palavras para esse filtro. Tente outra combinação.")
			continue
		}
		log.Debug().Str("theme", theme).Str("level", string(level)).Int("used", c.used.Len()).Msg("word picked")

		res, err := c.play(rec)
		if err != nil {
			return c.closed(err)
		}
		switch res {
		case resultQuit:
			c.println("Jogo encerrado. Até a próxima! 👋")
			return nil
		case resultWon:
			c.printf("Parabéns! Você acertou: %s 🎉\n", rec.DisplayForm)
		case resultLost:
			c.println("Boa tentativa! Vamos para a próxima. 💪")
		}

		again, err := c.choose("Jogar outra?", []string{optionYes, optionNo})
		if err != nil {
			return c.closed(err)
		}
		if again == optionNo {
			c.println("Obrigado por jogar! 👋")
			return nil
		}
	}
}

// play runs one round to its end.
func (c *Console) play(rec words.Record) (result, error) {
	m := game.New(rec)
	for {
		c.show(m)
		line, err := c.prompt("Letra ou comando: ")
		if err != nil {
			return resultQuit, err
		}

		cmd := ParseCommand(line)
		switch cmd.Kind {
		case CmdQuit:
			return resultQuit, nil
		case CmdEmpty:
			c.println("Digite uma letra.")
			continue
		case CmdHint:
			_ = m.RequestHint()
			continue
		case CmdWord:
			guess := cmd.Text
			if guess == "" {
				if guess, err = c.prompt("Digite seu palpite para a palavra: "); err != nil {
					return resultQuit, err
				}
			}
			if words.Normalize(guess) == "" {
				c.println("Digite uma palavra.")
				continue
			}
			if out, _ := m.GuessWord(guess); out == game.OutcomeMiss {
				c.println("Quase! Não foi dessa vez.")
			}
		case CmdLetter:
			out, err := m.GuessLetter(cmd.Text)
			if errors.Is(err, game.ErrInvalidGuess) {
				c.println("Digite apenas UMA letra (ou use '!' para chutar a palavra).")
				continue
			}
			switch out {
			case game.OutcomeRepeated:
				c.println("Você já tentou essa letra.")
				continue
			case game.OutcomeHit:
				if !m.Finished() {
					c.println("Boa! Continue assim.")
				}
			case game.OutcomeMiss:
				c.println("Não tem essa letra. Tente outra.")
			}
		}

		switch m.State {
		case game.StateWon:
			c.println("Palavra: " + render.Word(m.Revealed))
			return resultWon, nil
		case game.StateLost:
			c.println(render.Gallows(m.Stage()))
			c.println("Puxa! Acabaram as chances.")
			c.printf("A palavra era: %s\n", m.Solution())
			return resultLost, nil
		}
	}
}

// show renders the gallows, word, tried letters and (when visible) the hint.
func (c *Console) show(m *game.Match) {
	c.println(render.Gallows(m.Stage()))
	c.println("Palavra: " + render.Word(m.Revealed))
	c.println("Tentadas: " + render.Tried(m.TriedLetters()))
	if m.HintVisible() {
		hint := m.Hint
		if hint == "" {
			hint = "—"
		}
		c.println("Dica: " + hint)
	}
	c.println("Comandos: '?' para dica | '!' para chutar a palavra inteira | 'sair' para encerrar")
}

// choose prints a numbered menu and reads until a valid number is typed.
func (c *Console) choose(title string, options []string) (string, error) {
	c.printf("\n== %s ==\n", title)
	for i, o := range options {
		c.printf("%d. %s\n", i+1, o)
	}
	for {
		line, err := c.prompt("Escolha um número: ")
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		c.println("Ops! Digite um número válido.")
	}
}

// prompt writes label and reads one line.
func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// closed turns end-of-input into a clean exit.
func (c *Console) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		c.println("\nAté logo! 👋")
		return nil
	}
	return err
}

func (c *Console) println(s string) { fmt.Fprintln(c.out, s) }

func (c *Console) printf(format string, args ...any) { fmt.Fprintf(c.out, format, args...) }
