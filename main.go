/*
This file is the entry point for the spotymate-bot application.
It initializes and executes the root command defined in the cmd package.
*/
package main

import "github.com/spotymate/spotymate-bot/cmd"

// main is the entry point of the application.
// It calls the Execute function from the cmd package, which starts the bot.
func main() {
	cmd.Execute()
}
