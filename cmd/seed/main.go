package main

import (
	"flag"
	"log"

	"github.com/Bobur2828/Technical-assignment/internal/entity"
	"github.com/Bobur2828/Technical-assignment/internal/repo/persistent"
	"github.com/Bobur2828/Technical-assignment/pkg/config"
	"github.com/Bobur2828/Technical-assignment/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo author, a demo follower and a pair of articles so a fresh
// database has something to browse. Existing users are kept as they are.
func main() {
	password := flag.String("password", "password123", "password for the demo accounts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := persistent.NewUserRepository(db)
	articleRepo := persistent.NewArticleRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	author := seedUser(userRepo, &entity.User{
		Email:     "author@example.com",
		FirstName: "Alice",
		Password:  string(hash),
		Role:      entity.RoleAuthor,
	})
	seedUser(userRepo, &entity.User{
		Email:     "follower@example.com",
		FirstName: "Bob",
		Password:  string(hash),
		Role:      entity.RoleFollower,
	})

	articles := []*entity.Article{
		{Title: "Welcome", Content: "A public article anyone can read.", Public: true, AuthorID: author.ID},
		{Title: "Draft notes", Content: "A private article visible to authenticated readers.", Public: false, AuthorID: author.ID},
	}
	for _, article := range articles {
		if err := articleRepo.Create(article); err != nil {
			log.Fatalf("Failed to seed article %q: %v", article.Title, err)
		}
		log.Printf("Seeded article %q (public=%v)", article.Title, article.Public)
	}
}

func seedUser(repo persistent.UserRepository, user *entity.User) *entity.User {
	existing, err := repo.GetByEmail(user.Email)
	if err == nil {
		log.Printf("User %s already present, keeping existing row", user.Email)
		return existing
	}

	if err := repo.Create(user); err != nil {
		log.Fatalf("Failed to seed user %s: %v", user.Email, err)
	}
	log.Printf("Seeded user %s (role %s)", user.Email, user.Role)
	return user
}
