// Package model defines the data structures shared by the seobooster packages.
//
// This package contains the following main types:
//   - Page: one row of the URLs input file
//   - BoosterRow / BoosterList: rows of an SEO booster input file
//   - Link: one entry of a booster link list as written to the CMS
//   - Document: the migration document consumed by the CMS migration runner
//   - Generation: the state threaded through the generation pipeline
//
// The input, pipeline and report packages all depend on these types, so they
// live in a leaf package to avoid import cycles.
package model
