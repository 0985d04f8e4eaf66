// Package schema derives form fields from declarative model descriptions.
//
// A model is usually loaded from YAML:
//
//	name: invoice
//	fields:
//	  - name: number
//	    type: char
//	    max_length: 16
//	  - name: status
//	    choices: [[draft, Draft], [sent, Sent]]
//	    default: draft
//	  - name: customer
//	    type: foreign_key
//	    relation: customers
//	    null: true
//	relations:
//	  customers: [1, 2, 3]
//
// Builder turns field definitions into form.Field values with length and
// membership checks. Ids of related tables come from a RelationSource, either
// the inline StaticRelations of the model or pg.IDSource, and are cached per
// relation name:
//
//	model, err := schema.LoadYAML("invoice.yaml")
//	if err != nil {
//	    return err
//	}
//	fields, err := schema.NewBuilder(model.Relations).Fields(ctx, model, "number", "status")
package schema
