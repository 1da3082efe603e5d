package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Interfaces here are strictly persistence contracts; validation and other
// business rules belong to the service layer.
