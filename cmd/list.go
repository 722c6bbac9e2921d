package cmd

import (
	"fmt"
	"strconv"

	"tushare/internal/catalog"
	"tushare/internal/cli"
)

// list prints every category with its API count, or the APIs of one
// category. An unknown category prints the available ones instead.
func (a *app) list(category string) error {
	cat, err := a.catalog()
	if err != nil {
		return err
	}

	if category == "" {
		return a.listCategories(cat)
	}

	defs := cat.ByCategory(category)
	if len(defs) == 0 {
		fmt.Fprintf(a.out, "%s\n\nAvailable categories:\n",
			cli.FormatWarning(fmt.Sprintf("No APIs found in category '%s'", category)))

		tw := cli.NewPlainTableWriter(a.out)
		tw.SetHeaders([]string{"category", "description"})
		tw.SetNoHeaders(true)
		tw.SetIndent(2)
		tw.SetPadding(2)
		for _, c := range cat.Categories() {
			tw.AppendRow([]string{"- " + c, catalog.CategoryTitle(c)})
		}
		return tw.Render()
	}

	fmt.Fprintf(a.out, "Category: %s (%d APIs)\n\n", catalog.CategoryTitle(defs[0].Category), len(defs))
	return a.writeDefinitions(defs)
}

func (a *app) listCategories(cat *catalog.Catalog) error {
	counts := cat.CategoryCounts()

	fmt.Fprintf(a.out, "All APIs (%d in total)\n\n", cat.Len())

	tw := cli.NewPlainTableWriter(a.out)
	tw.SetHeaders([]string{"category", "apis", "description"})
	tw.SetIndent(2)
	for _, c := range cat.Categories() {
		tw.AppendRow([]string{c, strconv.Itoa(counts[c]), catalog.CategoryTitle(c)})
	}
	if err := tw.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprint(a.out, "\n"+
		"Run 'tushare list <category>' to see the APIs of a category\n"+
		"Run 'tushare help <api>' to see the details of an API\n"+
		"Run 'tushare search <keyword>' to search APIs\n")
	return err
}

// search prints the APIs whose name or description matches keyword.
func (a *app) search(keyword string) error {
	if keyword == "" {
		_, err := fmt.Fprintln(a.out, "Please provide a search keyword: tushare search <keyword>")
		return err
	}

	cat, err := a.catalog()
	if err != nil {
		return err
	}

	results := cat.Search(keyword)
	if len(results) == 0 {
		_, err := fmt.Fprintf(a.out, "%s\n\n"+
			"Tips:\n"+
			"  - try a more general keyword\n"+
			"  - run 'tushare list' to see all APIs\n",
			cli.FormatWarning(fmt.Sprintf("No APIs matching '%s'", keyword)))
		return err
	}

	fmt.Fprintf(a.out, "Search '%s' (%d results):\n\n", keyword, len(results))
	return a.writeDefinitions(results)
}

// writeDefinitions prints one line per API with its cleaned description.
func (a *app) writeDefinitions(defs []*catalog.Definition) error {
	tw := cli.NewPlainTableWriter(a.out)
	tw.SetHeaders([]string{"name", "description"})
	tw.SetIndent(2)
	for _, def := range defs {
		tw.AppendRow([]string{def.Name, catalog.CleanDescription(def.Description)})
	}
	return tw.Render()
}
