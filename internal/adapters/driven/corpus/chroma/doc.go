// Package chroma implements the corpus store on a ChromaDB collection
// over its HTTP API.
//
// Documents are written with embeddings precomputed by the configured
// embedding service, so the Chroma server never needs an embedding
// function of its own. Queries are embedded the same way and issued as
// vector queries.
package chroma
