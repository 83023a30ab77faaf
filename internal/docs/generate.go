package docs

//go:generate swag init --dir ../.. --generalInfo cmd/api/main.go --output . --overridesFile ../../.swaggo --exclude ../../tests
