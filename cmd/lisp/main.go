package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/peterh/liner"

	"github.com/HGHimself/lisp"
)

func main() {
	log.SetFlags(0)

	env, err := lisp.NewEnv()
	if err != nil {
		log.Fatal(err)
	}

	switch len(os.Args) {
	case 1:
		repl(env)
	case 2:
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		if err := run(env, f); err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [path to file]\n", os.Args[0])
		os.Exit(-1)
	}
}

// run evaluates every form in r and prints the last result.
func run(env *lisp.Env, r io.Reader) error {
	forms, err := lisp.Parse(r)
	if err != nil {
		return err
	}

	var result lisp.Value = lisp.SExpr{}
	for _, form := range forms {
		result = lisp.Eval(env, form)
		if e, ok := result.(*lisp.Error); ok {
			return e
		}
	}

	fmt.Println(lisp.EncodeToString(result))
	return nil
}

func repl(env *lisp.Env) {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("lisp> ")
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				log.Fatal(err)
			}
			return
		}
		cli.AppendHistory(line)

		switch line {
		case "exit":
			return
		case "env":
			for _, name := range env.Global().Names() {
				fmt.Println(name)
			}
			continue
		}

		forms, err := lisp.ParseString(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		for _, form := range forms {
			fmt.Println(lisp.EncodeToString(lisp.Eval(env, form)))
		}
	}
}
