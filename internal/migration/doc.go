// Package migration builds the CMS migration document that replaces the two
// seoBoosters blocks of every listed page.
//
// For each page the document holds one $iterate block whose filters select
// CMS records containing a pages collection with that URL and a
// components.seoBoosters structure. Its $migrate operations replace the
// title and the links of both boosters. A booster never links to the page it
// is shown on: links whose URL equals the page URL are dropped per page.
package migration
