// Package seed loads the demo school: three teachers, three students and
// three posts with comments.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/dmitrijs2005/edublog/internal/repositories/repomanager"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = common.DefaultTeacherPassword

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func person(id, username, email, name string, role models.Role, created string) *models.Identity {
	at := ts(created)
	return &models.Identity{
		ID: id, Username: username, Email: email, Name: name, Role: role,
		CreatedAt: at, UpdatedAt: at,
	}
}

// Identities returns the demo directory in registration order.
func Identities() []*models.Identity {
	return []*models.Identity{
		person("1", "carlos.silva", "carlos.silva@escola.edu.br", "Prof. Carlos Silva", models.RoleTeacher, "2024-01-15T08:00:00Z"),
		person("2", "ana.rodrigues", "ana.rodrigues@escola.edu.br", "Profa. Ana Rodrigues", models.RoleTeacher, "2024-02-10T09:30:00Z"),
		person("3", "lucas.oliveira", "lucas.oliveira@escola.edu.br", "Prof. Lucas Oliveira", models.RoleTeacher, "2024-03-05T10:15:00Z"),
		person("4", "maria.santos", "maria.santos@estudante.edu.br", "Maria Santos", models.RoleStudent, "2024-03-20T14:00:00Z"),
		person("5", "joao.oliveira", "joao.oliveira@estudante.edu.br", "João Oliveira", models.RoleStudent, "2024-04-01T11:30:00Z"),
		person("6", "pedro.costa", "pedro.costa@estudante.edu.br", "Pedro Costa", models.RoleStudent, "2024-04-15T16:45:00Z"),
	}
}

// Posts returns the demo posts, newest first.
func Posts() []*models.Post {
	return []*models.Post{
		{
			ID:    "1",
			Title: "Introdução à Programação Orientada a Objetos",
			Content: "A Programação Orientada a Objetos (POO) organiza o código em objetos que representam entidades do mundo real.\n\n" +
				"## Conceitos Fundamentais\n\n- Classes e Objetos\n- Encapsulamento\n- Herança\n- Polimorfismo\n",
			Description: "Uma introdução completa aos conceitos fundamentais da Programação Orientada a Objetos.",
			Author:      "Prof. Carlos Silva", AuthorID: "1", AuthorType: models.RoleTeacher,
			CreatedAt: ts("2024-05-20T10:30:00Z"), UpdatedAt: ts("2024-05-20T10:30:00Z"),
			Likes: 15,
			Tags:  []string{"programação", "poo", "javascript"},
			Comments: []models.Comment{
				{ID: "1", Author: "Maria Santos", Content: "Excelente explicação! Agora entendi melhor os conceitos de POO.", CreatedAt: ts("2024-05-20T14:20:00Z")},
				{ID: "2", Author: "João Oliveira", Content: "Os exemplos práticos ajudaram muito. Obrigado professor!", CreatedAt: ts("2024-05-20T16:45:00Z")},
			},
		},
		{
			ID:    "2",
			Title: "React Hooks: Guia Completo para Iniciantes",
			Content: "Os React Hooks permitem usar estado e outras funcionalidades sem escrever classes.\n\n" +
				"## Hooks Mais Utilizados\n\n- useState\n- useEffect\n",
			Description: "Aprenda a usar React Hooks de forma eficiente com exemplos práticos.",
			Author:      "Profa. Ana Rodrigues", AuthorID: "2", AuthorType: models.RoleTeacher,
			CreatedAt: ts("2024-05-18T14:15:00Z"), UpdatedAt: ts("2024-05-19T09:20:00Z"),
			Likes: 23,
			Tags:  []string{"react", "hooks", "javascript"},
			Comments: []models.Comment{
				{ID: "3", Author: "Pedro Costa", Content: "Muito útil! Estava com dificuldade para entender useEffect.", CreatedAt: ts("2024-05-18T16:30:00Z")},
			},
		},
		{
			ID:    "3",
			Title: "Introdução ao Git e GitHub",
			Content: "Git é um sistema de controle de versão distribuído que permite rastrear mudanças no código.\n\n" +
				"## Comandos Essenciais\n\n- git init\n- git add\n- git commit\n- git push\n",
			Description: "Aprenda os fundamentos do Git e GitHub para controle de versão eficiente.",
			Author:      "Prof. Lucas Oliveira", AuthorID: "3", AuthorType: models.RoleTeacher,
			CreatedAt: ts("2024-05-12T11:20:00Z"), UpdatedAt: ts("2024-05-12T11:20:00Z"),
			Likes:    18,
			Tags:     []string{"git", "github", "versionamento"},
			Comments: []models.Comment{},
		},
	}
}

// Load inserts the demo data into m. All failures are collected and
// returned together.
//
// Every seeded account gets a credential, students included, so the demo
// students can log in with DemoPassword. Students created at runtime get
// no credential and cannot log in.
func Load(ctx context.Context, m repomanager.RepositoryManager) error {
	return m.Atomic(ctx, func(ctx context.Context) error {
		var finalErr error

		for _, identity := range Identities() {
			if _, err := m.Identities().CreateWithCredential(ctx, identity, DemoPassword); err != nil {
				finalErr = errors.Join(finalErr, fmt.Errorf("seed identity %s: %w", identity.Email, err))
			}
		}

		posts := Posts()
		// oldest first so the store ends up newest-inserted first
		for i := len(posts) - 1; i >= 0; i-- {
			if _, err := m.Posts().Create(ctx, posts[i]); err != nil {
				finalErr = errors.Join(finalErr, fmt.Errorf("seed post %s: %w", posts[i].ID, err))
			}
		}
		return finalErr
	})
}
