//	@title			House Liber Arce API
//	@version		1.0
//	@description	Message board backend for the House Liber Arce campaign: sections, posts, and public pages

//	@BasePath	/

//	@tag.name			sections
//	@tag.description	Fixed board sections

//	@tag.name			posts
//	@tag.description	Per-section posts

//	@tag.name			public
//	@tag.description	Pages readable without an account

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reikouwu/House-Liber-Arce/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
