package app

import (
	"fmt"
	"io"
)

const usageText = `usage: pokemon-colorscripts [OPTION] [POKEMON NAME]

CLI utility to print out unicode image of a pokemon in your shell

optional arguments:
  -h, --help            Show this help message and exit
  -l, --list            Print list of all pokemon
  -n NAME, --name NAME  Select pokemon by name. Generally spelled like in the
                        games. A few exceptions are nidoran-f, nidoran-m,
                        mr-mime, farfetchd, flabebe, type-null etc. Perhaps
                        grep the output of --list if in doubt.
  --no-title            Do not display pokemon name
  -s, --shiny           Show the shiny version of the pokemon instead
  -r [RANDOM], --random [RANDOM]
                        Show a random pokemon. This flag can optionally be
                        followed by a generation number or range (1-8) to show
                        random pokemon from a specific generation or range of
                        generations. The generations can be provided as a
                        continuous range (eg. 1-3) or as a list of generations
                        (1,3,6)
`

func writeUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
