// Package service contains the application services that orchestrate the
// text engine, scheduler and stores behind coherent use-case interfaces.
package service
