package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"io"
	"ratchettree-go/pkg/treemath"
	"text/tabwriter"
)

var showFlags struct {
	size  uint32
	paths bool
}

// showCmd prints the layout of a tree.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the nodes and relationships of a tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		if showFlags.size == 0 {
			return fmt.Errorf("--size must be at least 1")
		}
		n := treemath.RosterIndex(showFlags.size)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, layout(n).String())
		if err := writeRelations(out, n); err != nil {
			return err
		}
		if showFlags.paths {
			return writePaths(out, n)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Uint32VarP(&showFlags.size, "size", "n", 8, "number of leaves")
	showCmd.Flags().BoolVar(&showFlags.paths, "paths", true, "print dirpath and copath of every leaf")
	rootCmd.AddCommand(showCmd)
}

func nodeLabel(x treemath.TreeIndex) string {
	if treemath.IsLeaf(x) {
		return fmt.Sprintf("%d (leaf %d)", x, x.LeafIndex())
	}
	return fmt.Sprintf("%d", x)
}

// layout renders the tree top-down, right child first.
func layout(n treemath.RosterIndex) treeprint.Tree {
	tree := treeprint.New()
	r := treemath.Root(n)
	tree.SetValue(nodeLabel(r))
	addChildren(tree, r, n)
	return tree
}

func addChildren(branch treeprint.Tree, x treemath.TreeIndex, n treemath.RosterIndex) {
	if treemath.IsLeaf(x) {
		return
	}
	for _, c := range []treemath.TreeIndex{treemath.Right(x, n), treemath.Left(x)} {
		if treemath.IsLeaf(c) {
			branch.AddNode(nodeLabel(c))
			continue
		}
		addChildren(branch.AddBranch(nodeLabel(c)), c, n)
	}
}

func writeRelations(out io.Writer, n treemath.RosterIndex) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "node\tlevel\tleft\tright\tparent\tsibling\t")
	for x := treemath.TreeIndex(0); treemath.InTree(x, n); x++ {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t\n",
			x, treemath.Level(x), treemath.Left(x), treemath.Right(x, n), treemath.Parent(x, n), treemath.Sibling(x, n))
	}
	return w.Flush()
}

func writePaths(out io.Writer, n treemath.RosterIndex) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "leaf\tdirpath\tcopath")
	for _, x := range treemath.Leaves(n) {
		fmt.Fprintf(w, "%d\t%v\t%v\n", x, treemath.DirpathRoot(x, n), treemath.Copath(x, n))
	}
	fmt.Fprintf(w, "frontier\t%v\t\n", treemath.Frontier(n))
	return w.Flush()
}
