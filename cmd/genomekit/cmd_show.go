package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd lists the loaded instruction set
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the instruction set loaded from the table file",
	RunE:  runShow,
}

// runShow prints the table in index order
func runShow(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable()
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("%-6s %-6s %-5s %s", "index", "id", "char", "name")))
	for _, in := range tbl.Instructions() {
		fmt.Printf("%-6d %-6d %-5c %s\n", in.Index, in.ID, in.Char, in.Name)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("%d instructions", tbl.Len())))
	return nil
}
