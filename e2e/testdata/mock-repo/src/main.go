package main

import "os"

func main() {
	_ = os.Getenv("API_KEY")
	_ = os.Getenv("DB_HOST")
	_ = os.Getenv("PATH")
}
