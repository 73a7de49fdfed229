// Command containerdemo is an interactive driver for the container and
// order packages. It only calls their public operations; nothing here is
// part of the library contract.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/amp-labs/amp-container/cli"
	"github.com/amp-labs/amp-container/container"
	"github.com/amp-labs/amp-container/logger"
	"github.com/amp-labs/amp-container/sortable"
)

func main() {
	log := logger.Configure(logger.FromEnv())
	c := container.New[sortable.Int]()

	for {
		action, err := cli.Select("Action",
			"add", "remove-all", "size", "render", "traversals", "quit")
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return
			}

			log.Error("select failed", "error", err)

			os.Exit(1)
		}

		switch action {
		case "add":
			v, err := cli.PromptInt("Value")
			if err != nil {
				log.Error("prompt failed", "error", err)

				continue
			}

			c.Add(sortable.Int(v))
			log.Info("added", "value", v, "size", c.Size())

		case "remove-all":
			v, err := cli.PromptInt("Value")
			if err != nil {
				log.Error("prompt failed", "error", err)

				continue
			}

			if err := c.RemoveAll(sortable.Int(v)); err != nil {
				fmt.Println(err)

				continue
			}

			log.Info("removed all occurrences", "value", v, "size", c.Size())

		case "size":
			fmt.Println(c.Size())

		case "render":
			fmt.Print(c.Render())

		case "traversals":
			if err := writeAllTraversals(os.Stdout, c, log); err != nil {
				log.Error("traversal failed", "error", err)
			}

		case "quit":
			return
		}
	}
}
