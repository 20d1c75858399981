package main

import (
	"github.com/kruti2924/SocialMediaApp/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
