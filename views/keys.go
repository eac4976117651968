package views

import "github.com/GrainArc/DataAtlas/daos"

func regionTransKey(id int64, lang string) daos.TransKey[int64] {
	return daos.TransKey[int64]{ID: id, Lang: lang}
}

func indicatorTransKey(id, lang string) daos.TransKey[string] {
	return daos.TransKey[string]{ID: id, Lang: lang}
}

func topicTransKey(id int64, lang string) daos.TransKey[int64] {
	return daos.TransKey[int64]{ID: id, Lang: lang}
}
