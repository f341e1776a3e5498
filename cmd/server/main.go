package main

import (
	"log"
	"os"

	"askmate/internal/data"
	"askmate/internal/db"
	"askmate/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=askmate port=5432 sslmode=disable"
	}

	gdb, err := db.Connect(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := data.NewStore(gdb)

	r := gin.Default()

	// Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	cookieStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("askmate_session", cookieStore))

	r.HTMLRender = loadTemplates("./web/templates")
	r.Static("/static", "./web/static")

	router.RegisterRoutes(r, store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("AskMate server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layout := templatesDir + "/layouts/base.html"

	views := []string{
		"question/list.html",
		"question/detail.html",
		"question/form.html",
		"answer/form.html",
		"comment/form.html",
		"auth/login.html",
		"auth/register.html",
		"user/list.html",
		"search.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFiles(view, layout, templatesDir+"/views/"+view)
	}

	return r
}
