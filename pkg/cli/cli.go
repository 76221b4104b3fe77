package cli

import "fmt"

const (
	Reset         = "\033[0m"
	RedColour     = "\033[31m"
	GreenColour   = "\033[32m"
	YellowColour  = "\033[33m"
	BlueColour    = "\033[34m"
	MagentaColour = "\033[35m"
	CyanColour    = "\033[36m"
)

func Errorln(message string) {
	fmt.Println(RedColour + message + Reset)
}

func Successln(message string) {
	fmt.Println(GreenColour + message + Reset)
}

func Warningln(message string) {
	fmt.Println(YellowColour + message + Reset)
}

func Blueln(message string) {
	fmt.Println(BlueColour + message + Reset)
}

func Magentaln(message string) {
	fmt.Println(MagentaColour + message + Reset)
}

func Cyanln(message string) {
	fmt.Println(CyanColour + message + Reset)
}
