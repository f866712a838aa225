// Package config loads, normalizes, and validates taskport configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/taskport/config.toml or a
// project-local taskport.toml. The Config type centralizes every knob the CLI
// needs: conversion defaults such as the assignee email and target language,
// output behaviour like BOM emission and subtask flattening, and log settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
