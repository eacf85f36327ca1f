package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mason-hq/bedrock/pkg/conf"
	"mason-hq/bedrock/pkg/conf/node"
)

var dumpFlags struct {
	file string
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump a definition with per-value provenance",
	Long: `Load a definition file and print its node tree, annotating every
value with the provenance the loader attached to it.

Example:
  bedrock dump --file elements/app.yaml`,
	RunE: dumpDefinition,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpFlags.file, "file", "f", "", "definition file to dump")
	_ = dumpCmd.MarkFlagRequired("file")
}

func dumpDefinition(cmd *cobra.Command, args []string) error {
	tree, err := conf.Load(dumpFlags.file)
	if err != nil {
		return err
	}
	renderMapping(os.Stdout, tree, 0)
	return nil
}

func renderMapping(w io.Writer, m *node.MappingNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range m.Keys() {
		child, _ := m.Get(key)
		switch v := child.(type) {
		case *node.MappingNode:
			fmt.Fprintf(w, "%s%s:  # %s\n", indent, key, v.Provenance())
			renderMapping(w, v, depth+1)
		case *node.SequenceNode:
			fmt.Fprintf(w, "%s%s:  # %s\n", indent, key, v.Provenance())
			renderSequence(w, v, depth)
		default:
			fmt.Fprintf(w, "%s%s: %s  # %s\n", indent, key, renderScalar(child), child.Provenance())
		}
	}
}

func renderSequence(w io.Writer, s *node.SequenceNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := 0; i < s.Len(); i++ {
		el := s.At(i)
		switch v := el.(type) {
		case *node.MappingNode:
			fmt.Fprintf(w, "%s-  # %s\n", indent, v.Provenance())
			renderMapping(w, v, depth+1)
		case *node.SequenceNode:
			fmt.Fprintf(w, "%s-  # %s\n", indent, v.Provenance())
			renderSequence(w, v, depth+1)
		default:
			fmt.Fprintf(w, "%s- %s  # %s\n", indent, renderScalar(el), el.Provenance())
		}
	}
}

func renderScalar(n node.Node) string {
	scalar, ok := n.(*node.ScalarNode)
	if !ok {
		return fmt.Sprintf("<%s>", n.Kind())
	}
	if scalar.IsNull() {
		return "~"
	}
	s, err := scalar.AsString()
	if err != nil {
		return fmt.Sprintf("<%s>", n.Kind())
	}
	return s
}
