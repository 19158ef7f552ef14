/*
Askform collects answers to a form defined in YAML, and prints them as JSON or YAML.

	askform [FLAGS] FORM.yaml

A form definition is a title and a list of fields.

	title: Project setup
	fields:
	  - name: name
	    prompt: Project name
	    type: validated
	    not_empty: true
	  - name: port
	    type: uint16
	  - name: license
	    type: choice
	    options: [MIT, Apache-2.0]
	  - name: description
	    type: optional

Field types are text, number, boolean, choice, multi_choice, optional, and validated, or any type printed by 'askform --kinds'.
Text and validated fields, and the string kind, may set not_empty, min_length, max_length, prefix, and message.
Number fields and numeric kinds like uint16 may set min, max, positive, and message.
Text, number, and boolean fields, and any kind, may set a default.
Keys that don't apply to a field's type are an error rather than being ignored.

Any field may set optional to leave it out of the answers when it fails.
Optional fields are optional unless they set optional to false, in which case a skipped answer is stored as empty.
*/
package main
