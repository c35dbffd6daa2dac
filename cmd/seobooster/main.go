// Package main provides the entry point for the seobooster CLI.
//
// seobooster turns a list of CMS page URLs and two SEO booster link lists
// into a migration document that replaces the seoBoosters component of
// every page, plus the email template used to hand the document over.
//
// Usage:
//
//	seobooster templates
//	seobooster generate -u urls.csv -a booster0.csv -b booster1.csv -l fr-FR
//
// See --help for all available options.
package main

func main() {
	Execute()
}
