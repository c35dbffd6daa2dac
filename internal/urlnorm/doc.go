// Package urlnorm turns absolute brand URLs into the site-relative paths
// stored by the CMS.
//
// The brand is the registrable label of the site (e.g. "clubmed"); any public
// suffix is accepted after it, so https://www.clubmed.fr/p/paris and
// https://clubmed.co.uk/p/paris both clean to /p/paris.
package urlnorm
