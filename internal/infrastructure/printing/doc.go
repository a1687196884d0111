// Package printing renders record statements to HTML with html/template and to PDF
// through headless Chrome (chromedp).
package printing
