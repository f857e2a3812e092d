package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name RecurringTodoService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename recurring_todo_service_mock.go --with-expecter
//go:generate mockery --name SweepService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename sweep_service_mock.go --with-expecter
