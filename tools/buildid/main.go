package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"tlb-server/internal/version"
	"tlb-server/pkg/utils"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "now":
		today := time.Now().UTC().Format("2006-01-02")
		id, err := version.BuildIDFor(today)
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			return
		}
		fmt.Printf("%s %d\n", today, id)
	case "id":
		if len(os.Args) < 3 {
			fmt.Println("Usage: buildid id <YYYY-MM-DD>")
			return
		}
		id, err := version.BuildIDFor(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			return
		}
		fmt.Println(id)
	case "date":
		if len(os.Args) < 3 {
			fmt.Println("Usage: buildid date <build_id>")
			return
		}
		id, err := strconv.Atoi(os.Args[2])
		if err != nil || id < 0 {
			fmt.Printf("Invalid build id: %q\n", os.Args[2])
			return
		}
		fmt.Println(version.DateOf(id))
	case "seed":
		if len(os.Args) < 3 {
			fmt.Println("Usage: buildid seed <word>")
			return
		}
		fmt.Println(utils.StringToSeed(os.Args[2]))
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Build ID - номера сборок и зерна башни
Commands:
  now                 - сегодняшняя дата сборки и её номер
  id <YYYY-MM-DD>     - номер сборки для даты (ldflags BuildDate)
  date <build_id>     - дата сборки по номеру
  seed <word>         - мастер-зерно, которое сервер выведет из -seed <word>`)
}
