package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scour/internal/callgraph"
	"scour/internal/decl"
	"scour/internal/snapshot"
	"scour/internal/source"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] <unit.scup>",
	Short: "Dump the declarations and call graph of a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("files", true, "list the unit's files")
	showCmd.Flags().Bool("decls", true, "list the top-level declarations")
	showCmd.Flags().Bool("graph", false, "print the call graph edges")
	showCmd.Flags().Bool("order", false, "print the reverse-postorder schedule")
}

func runShow(cmd *cobra.Command, args []string) error {
	showFiles, _ := cmd.Flags().GetBool("files")
	showDecls, _ := cmd.Flags().GetBool("decls")
	showGraph, _ := cmd.Flags().GetBool("graph")
	showOrder, _ := cmd.Flags().GetBool("order")

	unit, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	replay := snapshot.NewReplay(unit)

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Printf("%s %s (schema %d, producer %q)\n",
		bold.Sprint("unit"), args[0], unit.Schema, unit.Producer)
	if unit.Broken {
		fmt.Printf("  %s\n", color.New(color.FgRed).Sprint("broken: upstream parse errors"))
	}

	if showFiles {
		fmt.Printf("\n%s\n", bold.Sprint("files"))
		for i := range unit.Files {
			f := &unit.Files[i]
			fmt.Printf("  %-14s %s\n", source.Class(f.Class), f.Path)
		}
	}

	if showDecls {
		fmt.Printf("\n%s\n", bold.Sprint("declarations"))
		for i := 0; i < replay.Store.RecordedLen(); i++ {
			id := replay.Store.RecordedAt(i)
			printDecl(replay, id, faint)
		}
	}

	if !showGraph && !showOrder {
		return nil
	}

	graph := callgraph.Build(replay.Store, replay)

	if showGraph {
		fmt.Printf("\n%s\n", bold.Sprint("call graph"))
		for n := callgraph.NodeID(1); int(n) < graph.Len(); n++ {
			node := graph.Node(n)
			d := replay.Store.Get(node.Decl)
			if d == nil {
				continue
			}
			fmt.Printf("  %s\n", d.Name)
			for _, c := range node.Callees {
				if cd := replay.Store.Get(graph.DeclOf(c)); cd != nil {
					fmt.Printf("    -> %s\n", cd.Name)
				}
			}
		}
	}

	if showOrder {
		fmt.Printf("\n%s\n", bold.Sprint("schedule"))
		pos := 0
		for _, n := range graph.ReversePostorder() {
			id := graph.DeclOf(n)
			if !id.IsValid() {
				continue
			}
			pos++
			fmt.Printf("  %3d. ", pos)
			printDecl(replay, id, faint)
		}
	}
	return nil
}

func printDecl(replay *snapshot.Replay, id decl.ID, faint *color.Color) {
	d := replay.Store.Get(id)
	if d == nil {
		return
	}
	body := ""
	if !d.HasBody {
		body = " (no body)"
	}
	family := ""
	if d.Family == decl.FamilyInit {
		family = " init"
	}
	fmt.Printf("%-8s %s%s%s %s\n", d.Kind, d.Name, family, body,
		faint.Sprintf("%s:%d:%d", replay.Files.PathOf(d.Loc), d.Loc.Line, d.Loc.Col))
}
