package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/scrolldb/scrolldb/bootstrap"
	"github.com/scrolldb/scrolldb/configuration"
)

var banner = `
                          _ _     _ _
  ___  ___ _ __ ___  ___| | | __| | |__
 / __|/ __| '__/ _ \/ __| | |/ _` + "`" + ` | '_ \
 \__ \ (__| | | (_) | (__| | | (_| | |_) |
 |___/\___|_|  \___/ \___|_|_|\__,_|_.__/
                   version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(c)
	start()
}
