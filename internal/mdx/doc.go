// Package mdx renders a category tree as an MDX documentation page.
//
// Each category becomes an <Accordion>; each level of siblings is wrapped in
// an <AccordionGroup>, ordered by title. Leaves carry a short notice instead
// of a nested group:
//
//	<AccordionGroup>
//	<Accordion title="Books (books)">
//
//	<AccordionGroup>
//	<Accordion title="Fiction (fiction)">
//
//	<small>Fiction (fiction) has no sub-categories</small>
//	</Accordion>
//	</AccordionGroup>
//	</Accordion>
//	</AccordionGroup>
//
// A page is the front-matter block kept from the previous page (or a default
// one), an introductory sentence, and the rendered root group. Rendering is
// deterministic, so regenerating from an unchanged tree reproduces the page
// byte for byte.
package mdx
